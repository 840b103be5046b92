package normalizer

import "log"

// ConvertOffsets maps r to the equivalent char range in the other
// referential. For a Normalized-referential r it reports false when
// the range is out of bounds or empty after resolution. An
// Original-referential r always reports true, including empty and
// out-of-bounds ranges. Ported from normalizer.rs's convert_offsets.
func (n *NormalizedString) ConvertOffsets(r Range) (Range, bool) {
	switch r.Kind {
	case Normalized:
		ns, ne := r.resolve(len(n.alignments))
		sp, ok := n.alignments.reduceToOriginalSpan(ns, ne)
		if !ok {
			return Range{}, false
		}
		return OriginalSpan(sp.Start, sp.End), true

	case Original:
		os, oe := r.resolve(n.alignments.originalLen())
		start, end := 0, 0
		for i, a := range n.alignments {
			if oe < a.End {
				break
			}
			if a.Start <= os {
				start = i
			}
			if a.End <= oe {
				end = i + 1
			}
		}
		return NormalizedSpan(start, end), true

	default:
		log.Fatalf("normalizer: invalid Range.Kind: %v", r.Kind)
		return Range{}, false
	}
}

// GetRange extracts the substring of the normalized text identified
// by r. If r is Original-referential, it is first converted. Reports
// false on out-of-range or empty ranges.
func (n *NormalizedString) GetRange(r Range) (string, bool) {
	nr := r
	if r.Kind == Original {
		var ok bool
		nr, ok = n.ConvertOffsets(r)
		if !ok {
			return "", false
		}
	}
	cs, ce := nr.resolve(n.Len())
	return runeSubstring(n.normalized, cs, ce)
}

// GetRangeOriginal extracts the substring of the original text
// identified by r, symmetric to GetRange.
func (n *NormalizedString) GetRangeOriginal(r Range) (string, bool) {
	or := r
	if r.Kind == Normalized {
		var ok bool
		or, ok = n.ConvertOffsets(r)
		if !ok {
			return "", false
		}
	}
	cs, ce := or.resolve(n.LenOriginal())
	return runeSubstring(n.original, cs, ce)
}
