package paymentmethod

// Request is the wire record for creating or updating a payment method.
// Fields are pointers so that absent and zero-valued fields can be told
// apart during validation.
type Request struct {
	ID         *uint `json:"id"`
	MethodType *int  `json:"method_type"`
	IsDefault  *bool `json:"is_default"`
}

// Deserialize applies the wire record to m, validating required fields.
// An absent is_default defaults to false. An id in the wire record is
// copied onto the entity, otherwise m keeps its id.
func (r *Request) Deserialize(m *PaymentMethod) error {
	if r.ID != nil {
		m.ID = *r.ID
	}
	if r.MethodType == nil {
		return errMissingField("method_type")
	}

	methodType, err := TypeFromCode(*r.MethodType)
	if err != nil {
		return errBadData()
	}

	m.MethodType = methodType
	if r.IsDefault != nil {
		m.IsDefault = *r.IsDefault
	} else {
		m.IsDefault = false
	}
	return nil
}

// Response is a payment method in API responses.
type Response struct {
	ID         uint `json:"id"`
	MethodType int  `json:"method_type"`
	IsDefault  bool `json:"is_default"`
}

// ToResponse converts a PaymentMethod to its wire record.
func ToResponse(m *PaymentMethod) *Response {
	return &Response{
		ID:         m.ID,
		MethodType: m.MethodType.Code(),
		IsDefault:  m.IsDefault,
	}
}

// ToResponseList converts a slice of payment methods to wire records. It
// always returns a non-nil slice so empty lists serialize as [].
func ToResponseList(methods []*PaymentMethod) []*Response {
	responses := make([]*Response, len(methods))
	for i, m := range methods {
		responses[i] = ToResponse(m)
	}
	return responses
}
