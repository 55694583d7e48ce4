package domain

import "errors"

var (
	ErrAuctionNotFound       = errors.New("auction not found")
	ErrAuctionNotOpen        = errors.New("auction is not open")
	ErrAuctionNotYetClosable = errors.New("auction end time has not been reached yet")
	ErrBidTooLow             = errors.New("bid amount is too low")
	ErrInvalidAmount         = errors.New("bid amount cannot be zero or less than zero")
)
