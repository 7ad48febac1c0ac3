package message

import "errors"

var (
	ErrAmountOverflow = errors.New("message: amount does not fit in u256")
	ErrShortPayload   = errors.New("message: payload too short")
	ErrPayloadID      = errors.New("message: unexpected payload id")
)
