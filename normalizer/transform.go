package normalizer

// CharChange pairs an output rune with the change it represents
// against the previous normalized text:
//
//   - 0: this rune derives from exactly one previous rune (possibly
//     modified, e.g. case-folded, or carried through unchanged).
//   - positive (treated as 1 regardless of magnitude): an inserted
//     rune with no corresponding previous rune.
//   - -N (N >= 1): this rune derives from one previous rune, which is
//     followed by N deleted previous runes before the next kept one.
type CharChange struct {
	Rune   rune
	Change int
}

// transform rebuilds the normalized text and alignment table from a
// stream describing the new normalized text in terms of the current
// one. initialOffset is the count of previous-text chars removed
// before the very first emitted char. This is the sole writer of
// n.alignments; every mutator is built on top of it. Ported
// near-verbatim from normalizer.rs's transform.
func (n *NormalizedString) transform(stream []CharChange, initialOffset int) {
	prev := n.alignments
	runes := make([]rune, len(stream))
	aligns := make(alignment, len(stream))

	offset := -initialOffset
	for i, cc := range stream {
		idx := i - offset
		if cc.Change > 0 {
			offset++
		} else {
			offset += cc.Change
		}

		var a span
		switch {
		case cc.Change > 0:
			if idx < 1 {
				a = span{}
			} else {
				a = prev[idx-1]
			}
		default:
			a = prev[idx]
		}

		runes[i] = cc.Rune
		aligns[i] = a
	}

	n.normalized = string(runes)
	n.alignments = aligns
}
