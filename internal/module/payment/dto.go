package payment

// Request is the wire record for creating or updating a payment.
// Fields are pointers so that absent and zero-valued fields can be told
// apart during validation.
type Request struct {
	ID       *uint  `json:"id"`
	UserID   *int64 `json:"user_id"`
	OrderID  *int64 `json:"order_id"`
	Status   *int   `json:"status"`
	MethodID *int64 `json:"method_id"`
}

// Deserialize applies the wire record to p, validating required fields.
// It only mutates p; persistence is the caller's concern. An id in the
// wire record is copied onto the entity, otherwise p keeps its id.
func (r *Request) Deserialize(p *Payment) error {
	if r.ID != nil {
		p.ID = *r.ID
	}
	if r.UserID == nil {
		return errMissingField("user_id")
	}
	if r.OrderID == nil {
		return errMissingField("order_id")
	}
	if r.Status == nil {
		return errMissingField("status")
	}
	if r.MethodID == nil {
		return errMissingField("method_id")
	}

	status, err := StatusFromCode(*r.Status)
	if err != nil {
		return errBadData()
	}

	p.UserID = *r.UserID
	p.OrderID = *r.OrderID
	p.Status = status
	p.MethodID = *r.MethodID
	return nil
}

// ListFilter holds the query filters for listing payments. When both are
// supplied, user_id takes precedence.
type ListFilter struct {
	UserID  *int64 `form:"user_id"`
	OrderID *int64 `form:"order_id"`
}

// Response is a payment in API responses.
type Response struct {
	ID       uint  `json:"id"`
	UserID   int64 `json:"user_id"`
	OrderID  int64 `json:"order_id"`
	Status   int   `json:"status"`
	MethodID int64 `json:"method_id"`
}

// ToResponse converts a Payment to its wire record.
func ToResponse(p *Payment) *Response {
	return &Response{
		ID:       p.ID,
		UserID:   p.UserID,
		OrderID:  p.OrderID,
		Status:   p.Status.Code(),
		MethodID: p.MethodID,
	}
}

// ToResponseList converts a slice of payments to wire records. It always
// returns a non-nil slice so empty lists serialize as [] rather than null.
func ToResponseList(payments []*Payment) []*Response {
	responses := make([]*Response, len(payments))
	for i, p := range payments {
		responses[i] = ToResponse(p)
	}
	return responses
}
