package store

import "errors"

var (
	ErrMalformedLedger = errors.New("malformed ledger file")
	ErrUnknownDriver   = errors.New("unknown storage driver")
)
