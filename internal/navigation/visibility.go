package navigation

// VisibleThreshold is the intersection ratio at which a slide counts as seen
const VisibleThreshold = 0.5

// VisibilitySet records which slides have been seen. Membership is
// monotonic: once added an index is never removed.
type VisibilitySet struct {
	seen map[int]struct{}
}

func NewVisibilitySet(initial ...int) *VisibilitySet {
	v := &VisibilitySet{seen: make(map[int]struct{}, len(initial))}
	for _, i := range initial {
		v.seen[i] = struct{}{}
	}
	return v
}

// Observe reports an intersection ratio for index. It returns true when the
// index is newly added.
func (v *VisibilitySet) Observe(index int, ratio float64) bool {
	if ratio < VisibleThreshold {
		return false
	}
	if _, ok := v.seen[index]; ok {
		return false
	}
	v.seen[index] = struct{}{}
	return true
}

func (v *VisibilitySet) Has(index int) bool {
	_, ok := v.seen[index]
	return ok
}
