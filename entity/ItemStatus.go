package entity

// ItemStatus marks a single order line as fulfillable or not.
type ItemStatus string

const (
	ItemAccepted    ItemStatus = "accepted"
	ItemUnavailable ItemStatus = "unavailable"
)

func (s ItemStatus) Valid() bool {
	return s == ItemAccepted || s == ItemUnavailable
}

func (s ItemStatus) String() string { return string(s) }

func ParseItemStatus(raw string) (ItemStatus, bool) {
	s := ItemStatus(raw)
	return s, s.Valid()
}
