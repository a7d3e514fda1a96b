package auctionerrors

import "errors"

// Storage-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoBids          = errors.New("no bids found for product")
	ErrUserNoBids      = errors.New("user has not placed any bids")
)

// Admission-rule errors (user-correctable)
var (
	ErrInvalidBid = errors.New("invalid bid")
	ErrBidTooLow  = errors.New("bid amount too low")
	ErrSelfBid    = errors.New("seller cannot bid on own product")
)

// Lifecycle errors
var (
	ErrAuctionNotActive  = errors.New("auction is not active")
	ErrAuctionNotEnded   = errors.New("auction has not ended")
	ErrInvalidTransition = errors.New("invalid auction state transition")
	ErrInvalidSchedule   = errors.New("auction end time must be after start time")
)

// Infrastructure errors. ErrUnavailable is retryable and must never be
// presented to callers as a business-rule rejection.
var (
	ErrUnavailable   = errors.New("dependency unavailable")
	ErrPoisonMessage = errors.New("poison message")
)
