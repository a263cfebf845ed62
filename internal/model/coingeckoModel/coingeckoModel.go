package coingeckoModel

import "encoding/json"

// SimplePrice is the /simple/price response keyed by coingecko asset id.
// Entries stay raw so one malformed entry does not fail the batch.
type SimplePrice map[string]json.RawMessage

// Quote is one entry keyed by vs currency.
type Quote map[string]json.RawMessage
