package otsvg

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"unicode/utf8"
)

// gzip identification bytes followed by the deflate compression method, the only method gzip defines
var gzipHeader = []byte{0x1f, 0x8b, 0x08}

func looksLikeGzip(b []byte) bool {
	return bytes.HasPrefix(b, gzipHeader)
}

// Document returns the SVG text of the document, decompressing it when stored gzip compressed. The text must be valid UTF-8. The result is not cached, each call decompresses anew.
func (rec DocumentRecord) Document() (string, error) {
	b := rec.data
	if looksLikeGzip(b) {
		zr, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return "", fmt.Errorf("SVG: bad gzip document: %v", err)
		}

		var buf bytes.Buffer
		buf.Grow(len(b)) // decompressed data is typically larger
		if _, err := buf.ReadFrom(zr); err != nil {
			return "", fmt.Errorf("SVG: bad gzip document: %v", err)
		}
		b = buf.Bytes()
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("SVG: document is not valid UTF-8")
	}
	return string(b), nil
}
