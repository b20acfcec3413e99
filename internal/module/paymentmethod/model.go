package paymentmethod

// MethodType is the kind of payment method.
//
// The canonical wire representation is the 1-based integer code, matching
// the payment status convention.
type MethodType int

const (
	TypeCredit MethodType = iota + 1
	TypeDebit
	TypePaypal
)

// TypeFromCode validates a wire code and constructs a MethodType.
func TypeFromCode(code int) (MethodType, error) {
	t := MethodType(code)
	if !t.Valid() {
		return 0, ErrInvalidType
	}
	return t, nil
}

// Valid reports whether the type is one of the known codes.
func (t MethodType) Valid() bool {
	return t >= TypeCredit && t <= TypePaypal
}

// Code returns the wire code.
func (t MethodType) Code() int {
	return int(t)
}

func (t MethodType) String() string {
	switch t {
	case TypeCredit:
		return "CREDIT"
	case TypeDebit:
		return "DEBIT"
	case TypePaypal:
		return "PAYPAL"
	default:
		return "UNKNOWN"
	}
}

// PaymentMethod is a record of one way a user can pay.
//
// IsDefault is not exclusive: setting it on one record does not clear the
// flag on any other record.
type PaymentMethod struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	MethodType MethodType `json:"method_type" gorm:"not null"`
	IsDefault  bool       `json:"is_default" gorm:"not null;default:false"`
}

// TableName returns the database table name.
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
