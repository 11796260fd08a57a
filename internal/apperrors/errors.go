package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnknownCountry indicates that a destination country code did not resolve
// against the reference data. Terminal for the calculation that hit it.
var ErrUnknownCountry = errors.New("unknown destination country")

// ErrUnknownCurrency indicates that a currency code did not resolve against
// the reference data. Terminal for the calculation that hit it.
var ErrUnknownCurrency = errors.New("unknown currency")
