package payment

import "errors"

// Module errors.
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidStatus   = errors.New("invalid payment status code")
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
	return &ValidationError{msg: "Invalid payment: missing " + field}
}

func errBadData() error {
	return &ValidationError{msg: "Invalid payment: body of request contained bad or no data"}
}
