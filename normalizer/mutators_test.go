package normalizer

import "testing"

// TestUnchanged mirrors normalizer.rs's unchanged test.
func TestUnchanged(t *testing.T) {
	n := From("élégant")
	n.NFD().Filter(func(r rune) bool { return !nonspacingMark.Contains(r) })

	want := alignment{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}}
	if !alignmentEqual(n.alignments, want) {
		t.Fatalf("alignments = %v, want %v", n.alignments, want)
	}
	if n.normalized != "elegant" {
		t.Fatalf("normalized = %q", n.normalized)
	}
}

// TestRemovedChars mirrors removed_chars.
func TestRemovedChars(t *testing.T) {
	n := From("élégant")
	n.Filter(func(r rune) bool { return r != 'n' })

	want := alignment{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {6, 7}}
	if !alignmentEqual(n.alignments, want) {
		t.Fatalf("alignments = %v, want %v", n.alignments, want)
	}
}

// TestMixedAdditionAndRemoval mirrors mixed_addition_and_removal.
func TestMixedAdditionAndRemoval(t *testing.T) {
	n := From("élégant")
	n.NFD().Filter(func(r rune) bool { return !nonspacingMark.Contains(r) && r != 'n' })

	want := alignment{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {6, 7}}
	if !alignmentEqual(n.alignments, want) {
		t.Fatalf("alignments = %v, want %v", n.alignments, want)
	}
}

// TestRemoveAccentsScenario checks that RemoveAccents keeps the
// alignment table correct, unlike the direct RemoveFunc-on-string
// shortcut it replaces.
func TestRemoveAccentsScenario(t *testing.T) {
	n := From("élégant")
	n.RemoveAccents()
	if n.normalized != "elegant" {
		t.Fatalf("normalized = %q", n.normalized)
	}
	want := alignment{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}}
	if !alignmentEqual(n.alignments, want) {
		t.Fatalf("alignments = %v, want %v", n.alignments, want)
	}
}

func TestPrepend(t *testing.T) {
	n := From("there")
	n.Prepend("Hey ")

	if n.normalized != "Hey there" {
		t.Fatalf("normalized = %q", n.normalized)
	}
	want := alignment{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}
	if !alignmentEqual(n.alignments, want) {
		t.Fatalf("alignments = %v, want %v", n.alignments, want)
	}
	if got, ok := n.ConvertOffsets(NormalizedSpan(0, 4)); !ok || got != OriginalSpan(0, 0) {
		t.Fatalf("ConvertOffsets(Normalized(0,4)) = (%v, %v)", got, ok)
	}
}

func TestAppend(t *testing.T) {
	n := From("Hey")
	n.Append(" there")

	if n.normalized != "Hey there" {
		t.Fatalf("normalized = %q", n.normalized)
	}
	want := alignment{{0, 1}, {1, 2}, {2, 3}, {3, 3}, {3, 3}, {3, 3}, {3, 3}, {3, 3}, {3, 3}}
	if !alignmentEqual(n.alignments, want) {
		t.Fatalf("alignments = %v, want %v", n.alignments, want)
	}
	if got, ok := n.ConvertOffsets(NormalizedSpan(3, runeLen(" there"))); !ok || got != OriginalSpan(3, 3) {
		t.Fatalf("ConvertOffsets = (%v, %v)", got, ok)
	}
}

func TestLStrip(t *testing.T) {
	n := From("  This is an example  ")
	n.LStrip()
	if n.normalized != "This is an example  " {
		t.Fatalf("normalized = %q", n.normalized)
	}
	if got, ok := n.GetRangeOriginal(NormalizedSpan(0, runeLen(n.normalized))); !ok || got != "This is an example  " {
		t.Fatalf("got (%q, %v)", got, ok)
	}
}

func TestRStrip(t *testing.T) {
	n := From("  This is an example  ")
	n.RStrip()
	if n.normalized != "  This is an example" {
		t.Fatalf("normalized = %q", n.normalized)
	}
	if got, ok := n.GetRangeOriginal(NormalizedSpan(0, runeLen(n.normalized))); !ok || got != "  This is an example" {
		t.Fatalf("got (%q, %v)", got, ok)
	}
}

func TestStrip(t *testing.T) {
	n := From("  This is an example  ")
	n.Strip()
	if n.normalized != "This is an example" {
		t.Fatalf("normalized = %q", n.normalized)
	}
	if got, ok := n.GetRangeOriginal(NormalizedSpan(0, runeLen(n.normalized))); !ok || got != "This is an example" {
		t.Fatalf("got (%q, %v)", got, ok)
	}
}

func TestStripNoWhitespaceIsNoOp(t *testing.T) {
	n := From("nothing to strip")
	before := n.clone()
	n.Strip()
	if n.normalized != before.normalized || !alignmentEqual(n.alignments, before.alignments) {
		t.Fatal("Strip should be a no-op when there is no leading/trailing whitespace")
	}
}

func TestUppercaseExpandsSharpS(t *testing.T) {
	n := From("straße")
	n.Uppercase()
	if n.normalized != "STRASSE" {
		t.Fatalf("normalized = %q, want STRASSE", n.normalized)
	}
	if len(n.alignments) != runeLen(n.normalized) {
		t.Fatalf("alignments length %d != normalized rune length %d", len(n.alignments), runeLen(n.normalized))
	}
	// "ß" is the 5th original char (index 4); its expansion to "SS"
	// should carry change 0 then +1, landing both output runes'
	// alignments on the same original span.
	ss := n.alignments[4:6]
	if ss[0] != ss[1] {
		t.Fatalf("expanded ß alignments differ: %v", ss)
	}
}

func TestLowercaseIdentity(t *testing.T) {
	n := From("HELLO")
	n.Lowercase()
	if n.normalized != "hello" {
		t.Fatalf("normalized = %q", n.normalized)
	}
	want := alignment{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}
	if !alignmentEqual(n.alignments, want) {
		t.Fatalf("alignments = %v, want %v", n.alignments, want)
	}
}

func TestMapBypassesEngine(t *testing.T) {
	n := From("abc")
	before := append(alignment{}, n.alignments...)
	n.Map(func(r rune) rune { return r + 1 })
	if n.normalized != "bcd" {
		t.Fatalf("normalized = %q", n.normalized)
	}
	if !alignmentEqual(n.alignments, before) {
		t.Fatalf("Map must not touch alignments: got %v, want %v", n.alignments, before)
	}
}

func TestNFCIdempotent(t *testing.T) {
	n := From("café")
	n.NFD()
	normalizedOnce := n.clone().NFC().Get()
	normalizedTwice := n.clone().NFC().NFC().Get()
	if normalizedOnce != normalizedTwice {
		t.Fatalf("NFC not idempotent: %q vs %q", normalizedOnce, normalizedTwice)
	}
}
