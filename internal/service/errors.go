package service

import "errors"

var (
	ErrRefreshInProgress = errors.New("refresh already in progress")
	ErrNoReport          = errors.New("no report computed yet")
)
