package types

import "errors"

var (
	ErrMissingFilament  = errors.New("filament mass is required: set --filament-g (or use --interactive)")
	ErrMissingPrintTime = errors.New("print time is required: set --time-h (or use --interactive)")
	ErrUnknownPreset    = errors.New("unknown preset")
	ErrNonFiniteResult  = errors.New("computation produced a non-finite price; check inputs for NaN or infinity")
)
