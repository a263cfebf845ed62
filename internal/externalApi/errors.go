package externalApi

import "errors"

var ErrFeedUnavailable = errors.New("price feed unavailable")
