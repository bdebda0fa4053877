package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidTarget      = errors.New("invalid transfer target")
	ErrAuctionClosed      = errors.New("auction is closed")
	ErrBidTooLow          = errors.New("bid must exceed current bid")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNotFound           = errors.New("not found")
	ErrInvalidFormat      = errors.New("invalid duration format")
)

// StorageError marks a failed storage round-trip as retryable. Semantic
// rejections above are never wrapped this way.
func StorageError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
