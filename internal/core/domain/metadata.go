package domain

import "strings"

// maxMetadataLen caps free-text fields sent to the payment provider's
// metadata store.
const maxMetadataLen = 500

// SanitizeMetadata cleans a free-text field (donor message, cause title)
// before embedding it in payment-provider metadata. It keeps only
// printable ASCII (0x20-0x7E), dropping control characters, zero-width
// spaces and all non-ASCII text. This deliberately aggressive allowlist
// matches the payment API's metadata constraints; non-Latin text is
// stripped, not transliterated. The result is trimmed and capped at 500
// characters.
func SanitizeMetadata(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= 0x20 && r <= 0x7e {
			b.WriteRune(r)
		}
	}
	out := strings.TrimSpace(b.String())
	if len(out) > maxMetadataLen {
		// only plain spaces survive the allowlist, so trimming the cut
		// edge keeps the transform idempotent
		out = strings.TrimRight(out[:maxMetadataLen], " ")
	}
	return out
}
