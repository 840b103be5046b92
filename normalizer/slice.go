package normalizer

import "log"

// Slice produces a new NormalizedString containing only the text
// identified by r, with alignments rebased so that the kept original
// span's start becomes 0. Reports false when r is unmappable or
// resolves to an empty/out-of-range substring. Ported from
// normalizer.rs's slice.
func (n *NormalizedString) Slice(r Range) (*NormalizedString, bool) {
	var ro, rn Range
	switch r.Kind {
	case Original:
		ro = r
		var ok bool
		rn, ok = n.ConvertOffsets(r)
		if !ok {
			return nil, false
		}
	case Normalized:
		rn = r
		var ok bool
		ro, ok = n.ConvertOffsets(r)
		if !ok {
			return nil, false
		}
	default:
		log.Fatalf("normalizer: invalid Range.Kind: %v", r.Kind)
	}

	os, oe := ro.resolve(n.LenOriginal())
	ns, ne := rn.resolve(n.Len())

	originalPart, ok := runeSubstring(n.original, os, oe)
	if !ok {
		return nil, false
	}
	normalizedPart, ok := runeSubstring(n.normalized, ns, ne)
	if !ok {
		return nil, false
	}

	return &NormalizedString{
		original:   originalPart,
		normalized: normalizedPart,
		alignments: n.alignments.slice(ns, ne).shift(os),
	}, true
}

// SliceBytes is Slice over a byte-indexed range against the chosen
// view. Byte offsets must land exactly on char boundaries; otherwise
// this reports false without mutating anything.
func (n *NormalizedString) SliceBytes(r Range) (*NormalizedString, bool) {
	var view string
	switch r.Kind {
	case Original:
		view = n.original
	case Normalized:
		view = n.normalized
	default:
		log.Fatalf("normalizer: invalid Range.Kind: %v", r.Kind)
	}

	bs, be := r.resolve(len(view))
	cs, csOK := charIndexOfByte(view, bs)
	ce, ceOK := charIndexOfByte(view, be)
	if !csOK || !ceOK {
		return nil, false
	}

	var charRange Range
	if r.Kind == Original {
		charRange = OriginalSpan(cs, ce)
	} else {
		charRange = NormalizedSpan(cs, ce)
	}
	return n.Slice(charRange)
}

// SplitOff splits the receiver at normalized char position at,
// returning the tail and truncating the receiver to [0, at). If at is
// beyond the current length, a fresh empty value is returned and the
// receiver is left unchanged.
//
// The returned tail's alignments are not rebased to 0: they remain
// absolute char offsets into the pre-split original text, matching
// normalizer.rs's split_off, which performs the same split without
// rebasing. The tail's GetOriginal() begins at char LenOriginal() of
// the truncated receiver. Slice on the tail does not rebase these
// alignments either.
func (n *NormalizedString) SplitOff(at int) *NormalizedString {
	if at > n.Len() {
		return From("")
	}

	headAligns := n.alignments.slice(0, at)
	tailAligns := n.alignments.slice(at, len(n.alignments))

	byteAt, _ := byteOffsetOfChar(n.normalized, at)
	headNormalized, tailNormalized := n.normalized[:byteAt], n.normalized[byteAt:]

	originalAt := 0
	if len(headAligns) > 0 {
		originalAt = headAligns[len(headAligns)-1].End
	}
	originalByteAt, _ := byteOffsetOfChar(n.original, originalAt)
	headOriginal, tailOriginal := n.original[:originalByteAt], n.original[originalByteAt:]

	n.normalized = headNormalized
	n.alignments = headAligns
	n.original = headOriginal

	return &NormalizedString{
		original:   tailOriginal,
		normalized: tailNormalized,
		alignments: tailAligns,
	}
}

// MergeWith appends other to the receiver. The appended alignments are
// shifted by n.Len()-1 rather than LenOriginal() or Len(), an
// off-by-one inherited deliberately from normalizer.rs's merge_with —
// see DESIGN.md for why it's kept rather than corrected.
func (n *NormalizedString) MergeWith(other *NormalizedString) *NormalizedString {
	shift := n.Len() - 1

	shifted := make(alignment, len(other.alignments))
	for i, s := range other.alignments {
		shifted[i] = span{Start: s.Start + shift, End: s.End + shift}
	}

	n.original += other.original
	n.normalized += other.normalized
	n.alignments = append(n.alignments, shifted...)
	return n
}
