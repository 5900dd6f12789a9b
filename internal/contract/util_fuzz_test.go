package contract

import (
	"testing"
	"unicode/utf8"
)

// FuzzTruncateText fuzzes TruncateText with random strings and widths.
func FuzzTruncateText(f *testing.F) {
	f.Add("AddedToCollection.json", 10)
	f.Add("", 0)
	f.Add("ääää", 4)
	f.Add("short", 100)

	f.Fuzz(func(t *testing.T, s string, width int) {
		if !utf8.ValidString(s) {
			return
		}
		out := TruncateText(s, width)
		if width > 3 && utf8.RuneCountInString(out) > width {
			t.Errorf("TruncateText(%q, %d) = %q exceeds width", s, width, out)
		}
	})
}
