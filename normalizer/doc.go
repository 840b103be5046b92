// Package normalizer implements a dual-view normalized string: a value
// that carries both an unmodified original text and a derived
// normalized text, together with a character-level alignment between
// them. Offsets discovered in the normalized text can be mapped back
// losslessly to the original text, and vice versa.
//
// A NormalizedString is constructed from raw text with From, mutated
// through the chainable methods in mutators.go (NFD, NFKD, NFC, NFKC,
// Filter, Map, Lowercase, Uppercase, Prepend, Append, LStrip, RStrip,
// Strip), and queried through ConvertOffsets, GetRange and
// GetRangeOriginal. Slice, SliceBytes, SplitOff and MergeWith derive
// new dual-view values while preserving alignment.
package normalizer
