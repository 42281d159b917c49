package textutil

import (
	"bytes"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw document bytes to text. Invalid UTF-8 sequences are
// dropped rather than replaced, a leading byte order mark is removed, and the
// result is NFC-normalized so composed and decomposed forms tokenize alike.
func Decode(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	text := strings.ToValidUTF8(string(raw), "")
	return norm.NFC.String(text)
}
