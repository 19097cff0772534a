package domain

import "errors"

// Error taxonomy shared by the services and mapped to the JSON envelope at the
// request boundary. Nothing in the pipeline retries on any of these.
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrUnsupportedAsset      = errors.New("unsupported asset")
	ErrRateUnavailable       = errors.New("rate unavailable")
	ErrDepositNotFound       = errors.New("deposit not found")
	ErrConversionNotFound    = errors.New("conversion not found")
	ErrBankAccountNotFound   = errors.New("bank account not found")
	ErrDepositNotConfirmable = errors.New("deposit not confirmable")
	ErrDepositNotConvertible = errors.New("deposit not convertible")
	ErrProvider              = errors.New("payout provider error")
)
