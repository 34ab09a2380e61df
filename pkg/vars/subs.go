package vars

// Subs associates variables with an owner (a widget, the layout pass, a
// render hook) so the owner can find out once per cycle whether anything
// it read has changed, without polling every variable in the tree: the
// owner's combined update mask is intersected with the cycle's change
// mask first, and IsNew is polled only on an intersection.
//
// The zero Subs is ready to use.
type Subs struct {
	mask UpdateMask
	vars []AnyVar
}

// Add subscribes to v. Variables that can never update are skipped, so
// subscribing to literal constants costs nothing.
func (s *Subs) Add(u *Updates, v AnyVar) {
	if !v.CanUpdate() {
		return
	}
	s.mask.unionWith(v.UpdateMask(u))
	s.vars = append(s.vars, v)
}

// Changed reports whether any subscribed variable is new in the current
// cycle.
func (s *Subs) Changed(u *Updates) bool {
	if !s.mask.Intersects(u.ChangeMask()) {
		return false
	}
	for _, v := range s.vars {
		if v.IsNew(u) {
			return true
		}
	}
	return false
}

// Clear drops all subscriptions.
func (s *Subs) Clear() { *s = Subs{} }
