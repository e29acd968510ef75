package nbgen

// SectionTracker emits a header block whenever the unit changes between
// consecutive records. Units are compared in full: a change in the deepest
// component starts a new section just like a change in the first.
type SectionTracker struct {
	last string
	set  bool
}

// MaybeHeader returns a header block for u if it differs from the previous
// unit, or false if the record continues the current section.
func (t *SectionTracker) MaybeHeader(u Unit) (Block, bool) {
	label := u.String()
	if t.set && label == t.last {
		return Block{}, false
	}

	t.last = label
	t.set = true
	return Block{Kind: BlockHeader, Unit: u, Text: "# " + label}, true
}
