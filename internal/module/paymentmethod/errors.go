package paymentmethod

import "errors"

// Module errors.
var (
	ErrMethodNotFound = errors.New("payment method not found")
	ErrInvalidType    = errors.New("invalid payment method type code")
)

// ValidationError reports a wire record that failed deserialization.
// The message is the API contract and is returned to the client verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func errMissingField(field string) error {
	return &ValidationError{msg: "Invalid payment method: missing " + field}
}

func errBadData() error {
	return &ValidationError{msg: "Invalid payment method: body of request contained bad or no data"}
}
