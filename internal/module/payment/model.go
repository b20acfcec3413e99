package payment

// Status is the lifecycle state of a payment.
//
// The canonical wire representation is the 1-based integer code; names are
// only used for logs and never appear in API payloads.
type Status int

const (
	StatusUnpaid Status = iota + 1
	StatusProcessing
	StatusPaid
)

// StatusFromCode validates a wire code and constructs a Status.
func StatusFromCode(code int) (Status, error) {
	s := Status(code)
	if !s.Valid() {
		return 0, ErrInvalidStatus
	}
	return s, nil
}

// Valid reports whether the status is one of the known codes.
func (s Status) Valid() bool {
	return s >= StatusUnpaid && s <= StatusPaid
}

// Code returns the wire code.
func (s Status) Code() int {
	return int(s)
}

func (s Status) String() string {
	switch s {
	case StatusUnpaid:
		return "UNPAID"
	case StatusProcessing:
		return "PROCESSING"
	case StatusPaid:
		return "PAID"
	default:
		return "UNKNOWN"
	}
}

// Payment is a record of one payment transaction for a user's order.
// MethodID is a soft reference to a PaymentMethod; the entity layer does
// not enforce its existence.
type Payment struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID   int64  `json:"user_id" gorm:"not null;index"`
	OrderID  int64  `json:"order_id" gorm:"not null;index"`
	Status   Status `json:"status" gorm:"not null"`
	MethodID int64  `json:"method_id" gorm:"not null"`
}

// TableName returns the database table name.
func (Payment) TableName() string {
	return "payments"
}
