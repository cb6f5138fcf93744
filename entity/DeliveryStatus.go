package entity

// DeliveryStatus is the closed set of delivery states. "returned" is a legal
// stored value but is not accepted by the status-update endpoint; it has no
// exposed transition.
type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryPicked    DeliveryStatus = "picked"
	DeliveryInTransit DeliveryStatus = "inTransit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryReturned  DeliveryStatus = "returned"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryAssigned, DeliveryPicked, DeliveryInTransit,
		DeliveryDelivered, DeliveryReturned:
		return true
	}
	return false
}

func (s DeliveryStatus) String() string { return string(s) }

// Updatable reports whether s may be set through the status-update endpoint.
func (s DeliveryStatus) Updatable() bool {
	switch s {
	case DeliveryAssigned, DeliveryPicked, DeliveryInTransit, DeliveryDelivered:
		return true
	}
	return false
}

func ParseDeliveryStatus(raw string) (DeliveryStatus, bool) {
	s := DeliveryStatus(raw)
	return s, s.Valid()
}
