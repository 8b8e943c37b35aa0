package entry

import "math"

// ID identifies an entry. Ids are issued by an IDAllocator and never reused.
type ID uint64

// IDAllocator issues strictly increasing ids. The zero value is ready to use
// and hands out 1 first.
type IDAllocator struct {
	LatestID ID `json:"latest_id"`
}

// Next advances the counter and returns the new id.
func (a *IDAllocator) Next() ID {
	if a.LatestID == math.MaxUint64 {
		panic("entry: id space exhausted")
	}
	a.LatestID++
	return a.LatestID
}
