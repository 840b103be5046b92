package normalizer

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NFD applies canonical decomposition.
func (n *NormalizedString) NFD() *NormalizedString { return n.decompose(norm.NFD) }

// NFKD applies compatibility decomposition.
func (n *NormalizedString) NFKD() *NormalizedString { return n.decompose(norm.NFKD) }

// NFC applies canonical composition.
func (n *NormalizedString) NFC() *NormalizedString { return n.compose(norm.NFD, norm.NFC) }

// NFKC applies compatibility composition.
func (n *NormalizedString) NFKC() *NormalizedString { return n.compose(norm.NFKD, norm.NFKC) }

// decompose drives a pure decomposing form (NFD or NFKD): every
// cluster's first rune carries change 0, the rest carry +1.
func (n *NormalizedString) decompose(form norm.Form) *NormalizedString {
	if form.IsNormalString(n.normalized) {
		return n
	}

	var stream []CharChange
	var it norm.Iter
	it.InitString(form, n.normalized)
	for !it.Done() {
		cluster := []rune(string(it.Next()))
		for i, r := range cluster {
			change := 0
			if i > 0 {
				change = 1
			}
			stream = append(stream, CharChange{Rune: r, Change: change})
		}
	}
	n.transform(stream, 0)
	return n
}

// compose drives a composing form (NFC or NFKC): the input is first
// walked in its decomposed form (decomp) to find cluster boundaries,
// then each cluster is recomposed with compose. A cluster that
// consumed k input runes and composes to m output runes emits
// -(k-m) on its first output rune when k > m, recording that k-m
// previous runes were consumed without a direct successor, and +1 on
// every output rune past the k-th when m > k; all others carry 0.
func (n *NormalizedString) compose(decomp, compose norm.Form) *NormalizedString {
	if compose.IsNormalString(n.normalized) {
		return n
	}

	var stream []CharChange
	var it norm.Iter
	it.InitString(decomp, n.normalized)
	for !it.Done() {
		start := it.Pos()
		cluster := []rune(string(it.Next()))
		composedStr, _, err := transform.String(compose, string(cluster))
		if err != nil {
			composedStr = string(cluster)
		}
		composed := []rune(composedStr)

		k, m := runeLen(n.normalized[start:it.Pos()]), len(composed)
		for i, r := range composed {
			change := 0
			if i == 0 && k > m {
				change = -(k - m)
			} else if i >= k {
				change = 1
			}
			stream = append(stream, CharChange{Rune: r, Change: change})
		}
	}
	n.transform(stream, 0)
	return n
}

// Filter keeps only runes for which keep returns true, generalizing
// normalizer.rs's filter<F: Fn(char) -> bool> to an arbitrary
// predicate: the current text is walked right-to-left counting dropped
// runes; each kept rune emits a change of 0, or -dropped when runs of
// drops preceded it; the stream is then reversed back to left-to-right
// order before being handed to the transform engine, with leftover
// drops at the very start becoming the initial offset.
func (n *NormalizedString) Filter(keep func(rune) bool) *NormalizedString {
	chars := []rune(n.normalized)

	var reversed []CharChange
	dropped := 0
	for i := len(chars) - 1; i >= 0; i-- {
		r := chars[i]
		if !keep(r) {
			dropped++
			continue
		}
		if dropped > 0 {
			reversed = append(reversed, CharChange{Rune: r, Change: -dropped})
			dropped = 0
		} else {
			reversed = append(reversed, CharChange{Rune: r, Change: 0})
		}
	}

	stream := make([]CharChange, len(reversed))
	for i, cc := range reversed {
		stream[len(reversed)-1-i] = cc
	}

	n.transform(stream, dropped)
	return n
}

// Map replaces each rune of the normalized text with f(rune). The
// alignment is unchanged since the char count is preserved 1-for-1,
// so this bypasses the transform engine entirely.
func (n *NormalizedString) Map(f func(rune) rune) *NormalizedString {
	out := make([]rune, 0, len(n.normalized))
	for _, r := range n.normalized {
		out = append(out, f(r))
	}
	n.normalized = string(out)
	return n
}

// Lowercase case-folds every rune to its full lowercase expansion
// (e.g. Turkish dotted/dotless handling aside, most runes expand 1:1,
// but e.g. "İ" expands to two runes under some mappings). The first
// rune of each expansion carries change 0, subsequent ones +1.
func (n *NormalizedString) Lowercase() *NormalizedString { return n.caseFold(cases.Lower(language.Und)) }

// Uppercase case-folds every rune to its full uppercase expansion
// (e.g. "ß" -> "SS", "ﬃ" -> "FFI").
func (n *NormalizedString) Uppercase() *NormalizedString { return n.caseFold(cases.Upper(language.Und)) }

func (n *NormalizedString) caseFold(c cases.Caser) *NormalizedString {
	var stream []CharChange
	for _, r := range n.normalized {
		expanded := []rune(c.String(string(r)))
		for i, e := range expanded {
			change := 0
			if i > 0 {
				change = 1
			}
			stream = append(stream, CharChange{Rune: e, Change: change})
		}
	}
	n.transform(stream, 0)
	return n
}

// Prepend inserts s at the head of the normalized text, extending the
// alignment with one zero-width (0, 0) entry per rune of s. original
// is untouched.
func (n *NormalizedString) Prepend(s string) *NormalizedString {
	n.normalized = s + n.normalized
	n.alignments = n.alignments.spliceHead(runeLen(s))
	return n
}

// Append adds s to the tail of the normalized text, extending the
// alignment with one entry (t, t) per rune of s, where t is the last
// alignment's End (or 0 if empty).
func (n *NormalizedString) Append(s string) *NormalizedString {
	n.normalized += s
	n.alignments = n.alignments.extendTail(runeLen(s))
	return n
}

// LStrip removes leading whitespace.
func (n *NormalizedString) LStrip() *NormalizedString { return n.lrstrip(true, false) }

// RStrip removes trailing whitespace.
func (n *NormalizedString) RStrip() *NormalizedString { return n.lrstrip(false, true) }

// Strip removes leading and trailing whitespace.
func (n *NormalizedString) Strip() *NormalizedString { return n.lrstrip(true, true) }

func (n *NormalizedString) lrstrip(left, right bool) *NormalizedString {
	chars := []rune(n.normalized)

	leading := 0
	if left {
		for _, r := range chars {
			if !unicode.IsSpace(r) {
				break
			}
			leading++
		}
	}

	trailing := 0
	if right {
		for i := len(chars) - 1; i >= 0; i-- {
			if !unicode.IsSpace(chars[i]) {
				break
			}
			trailing++
		}
	}

	if leading == 0 && trailing == 0 {
		return n
	}

	lastKept := len(chars) - trailing - 1
	var stream []CharChange
	for i := leading; i < len(chars)-trailing; i++ {
		change := 0
		if i == lastKept {
			change = -trailing
		}
		stream = append(stream, CharChange{Rune: chars[i], Change: change})
	}
	n.transform(stream, leading)
	return n
}

// nonspacingMark is the predicate driving RemoveAccents, built from
// golang.org/x/text/runes' range-table idiom rather than a hand-rolled
// switch over unicode.Mn.
var nonspacingMark = runes.In(unicode.Mn)

// RemoveAccents decomposes the normalized text and filters out
// nonspacing combining marks: from("élégant").nfd().filter(!mark_nonspacing).
func (n *NormalizedString) RemoveAccents() *NormalizedString {
	return n.NFD().Filter(func(r rune) bool { return !nonspacingMark.Contains(r) })
}
