package service

import "errors"

// Error strings below are part of the wire contract consumed by the bridge
// clients; do not reword them.
var (
	ErrNoData        = errors.New("No data provided for hash")
	ErrInvalidLength = errors.New("Invalid length")
	ErrCrypto        = errors.New("cryptographic operation failed")
)

// UnknownOperationError reports an operation name outside the supported set.
type UnknownOperationError struct {
	Op string
}

func (e *UnknownOperationError) Error() string {
	return "Unknown operation: " + e.Op
}
