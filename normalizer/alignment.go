package normalizer

// span is a half-open char range (start, end) into the original text,
// the per-normalized-character unit of an alignment table.
type span struct {
	Start int
	End   int
}

// alignment is a dense table with one entry per normalized character;
// entry i identifies the contiguous slice of the original text from
// which normalized character i was derived. Mirrors normalizer.rs's
// alignments field, but as explicit half-open spans rather than
// positions-plus-deltas.
type alignment []span

// shift subtracts base from both endpoints of every entry. Used by
// Slice to rebase an alignment onto the chosen original substring.
func (a alignment) shift(base int) alignment {
	out := make(alignment, len(a))
	for i, s := range a {
		out[i] = span{Start: s.Start - base, End: s.End - base}
	}
	return out
}

// spliceHead inserts n zero-width (0, 0) entries at the head, for Prepend.
func (a alignment) spliceHead(n int) alignment {
	out := make(alignment, 0, len(a)+n)
	for i := 0; i < n; i++ {
		out = append(out, span{})
	}
	return append(out, a...)
}

// extendTail inserts n zero-width (t, t) entries at the tail, for Append.
func (a alignment) extendTail(n int) alignment {
	t := 0
	if len(a) > 0 {
		t = a[len(a)-1].End
	}
	out := make(alignment, len(a), len(a)+n)
	copy(out, a)
	for i := 0; i < n; i++ {
		out = append(out, span{Start: t, End: t})
	}
	return out
}

// slice returns the contiguous subsequence [start, end) of a.
func (a alignment) slice(start, end int) alignment {
	out := make(alignment, end-start)
	copy(out, a[start:end])
	return out
}

// reduceToOriginalSpan returns the original-text span covered by
// normalized chars [ns, ne): the start of the first entry's span
// joined with the end of the last entry's span. Undefined (returns
// false) for an empty or out-of-bounds range.
func (a alignment) reduceToOriginalSpan(ns, ne int) (span, bool) {
	if ns < 0 || ne > len(a) || ns >= ne {
		return span{}, false
	}
	return span{Start: a[ns].Start, End: a[ne-1].End}, true
}

// originalLen returns the char count of the original text this
// alignment was built against: the last entry's End, or 0 when empty.
func (a alignment) originalLen() int {
	if len(a) == 0 {
		return 0
	}
	return a[len(a)-1].End
}
