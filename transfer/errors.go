package transfer

import "errors"

var (
	ErrZeroAmount           = errors.New("transfer: amount is zero after normalization")
	ErrInvalidRedeemerChain = errors.New("transfer: invalid redeemer chain")
	ErrNativeWrappedAsset   = errors.New("transfer: wrapped asset originates on this chain")
	ErrDecimals             = errors.New("transfer: invalid decimals")
)
