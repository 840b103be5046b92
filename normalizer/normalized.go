package normalizer

// NormalizedString is the sole core entity of this package: it owns
// an original text (changed only by SplitOff, which truncates it), a
// mutable normalized text, and an
// alignment table relating the two, mirroring normalizer.rs's
// NormalizedString.
//
// Exclusive-owner semantics: every mutator requires exclusive access
// to the receiver; read queries never mutate either text or the
// alignment table. There is no shared ownership and no aliasing of
// the interior — Slice, SliceBytes and SplitOff copy substrings
// rather than referencing the receiver's buffers.
type NormalizedString struct {
	original   string
	normalized string
	alignments alignment
}

// From creates a NormalizedString from raw text. Its normalized view
// starts out identical to the original, with an identity alignment:
// alignments[i] == (i, i+1).
func From(text string) *NormalizedString {
	n := runeLen(text)
	a := make(alignment, n)
	for i := range a {
		a[i] = span{Start: i, End: i + 1}
	}
	return &NormalizedString{original: text, normalized: text, alignments: a}
}

// Get returns the current normalized text.
func (n *NormalizedString) Get() string { return n.normalized }

// GetOriginal returns the original text captured at construction.
func (n *NormalizedString) GetOriginal() string { return n.original }

// Len returns the char count of the normalized text.
func (n *NormalizedString) Len() int { return runeLen(n.normalized) }

// LenOriginal returns the char count of the original text.
func (n *NormalizedString) LenOriginal() int { return runeLen(n.original) }

// IsEmpty reports whether the normalized text is empty.
func (n *NormalizedString) IsEmpty() bool { return n.normalized == "" }

// clone returns a deep copy, used internally wherever a new,
// independently-owned NormalizedString must be produced.
func (n *NormalizedString) clone() *NormalizedString {
	a := make(alignment, len(n.alignments))
	copy(a, n.alignments)
	return &NormalizedString{original: n.original, normalized: n.normalized, alignments: a}
}
