package usecasees

import "errors"

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidSide         = errors.New("invalid order side")
	ErrUnknownAsset        = errors.New("unknown asset")
	ErrMarketDisabled      = errors.New("market disabled")
	ErrInvalidStatus       = errors.New("invalid market status")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrOrderNotFound       = errors.New("order not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidState        = errors.New("invalid order state")
	ErrPriceMismatch       = errors.New("price mismatch")
	ErrOrderLocked         = errors.New("order transition in progress")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)
