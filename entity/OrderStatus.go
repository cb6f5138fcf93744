package entity

// OrderStatus is the closed set of order states. It is validated once at the
// boundary and carried as a typed value everywhere else.
type OrderStatus string

const (
	OrderPending          OrderStatus = "pending"
	OrderAccepted         OrderStatus = "accepted"
	OrderRejected         OrderStatus = "rejected"
	OrderPacked           OrderStatus = "packed"
	OrderReadyForDispatch OrderStatus = "readyForDispatch"
	OrderInDelivery       OrderStatus = "inDelivery"
	OrderDelivered        OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderRejected, OrderPacked,
		OrderReadyForDispatch, OrderInDelivery, OrderDelivered:
		return true
	}
	return false
}

func (s OrderStatus) String() string { return string(s) }

// ParseOrderStatus converts raw input into a typed status.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(raw)
	return s, s.Valid()
}
