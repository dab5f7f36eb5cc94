// Package otsvg reads the SVG table of OpenType fonts, which associates glyph ID ranges with SVG documents (SVGinOT). It exposes each document's raw bytes as stored in the font as well as its decompressed text.
package otsvg

import (
	"fmt"

	"github.com/tdewolff/font"
	"github.com/tdewolff/parse/v2"
)

// ErrNotFound is returned by ParseFont when the font has no SVG table.
var ErrNotFound = fmt.Errorf("SVG: missing table")

// Table is a parsed SVG table. Records appear in the order they are stored in the table, which is not necessarily ascending by glyph ID. Records reference the table data directly, they must not be used after the font data is released.
type Table struct {
	Records []DocumentRecord
}

// DocumentRecord associates a closed range of glyph IDs with an SVG document. Fonts may reuse one document for several ranges, in which case multiple records reference the same bytes.
type DocumentRecord struct {
	StartGlyphID uint16
	EndGlyphID   uint16

	data []byte
}

// Data returns the document bytes as stored in the table, which may be gzip compressed.
func (rec DocumentRecord) Data() []byte {
	return rec.data
}

// ParseFont parses a font file (TTF, OTF, TTC, WOFF, WOFF2, or EOT) and reads its SVG table. Index specifies the font for font collections, otherwise pass zero. It returns ErrNotFound when the font has no SVG table.
func ParseFont(b []byte, index int) (*Table, error) {
	sfnt, err := font.ParseFont(b, index)
	if err != nil {
		return nil, err
	}
	data, ok := sfnt.Tables["SVG "]
	if !ok {
		return nil, ErrNotFound
	}
	return Parse(data)
}

// Parse parses raw SVG table data.
func Parse(b []byte) (*Table, error) {
	if len(b) < 10 {
		return nil, fmt.Errorf("SVG: bad table")
	}

	r := parse.NewBinaryReaderBytes(b)
	if r.ReadUint16() != 0 {
		return nil, fmt.Errorf("SVG: bad version")
	}
	listOffset := r.ReadUint32()
	_ = r.ReadUint32() // reserved
	if uint32(len(b)) < listOffset || uint32(len(b))-listOffset < 2 {
		return nil, fmt.Errorf("SVG: bad document list offset")
	}

	// document offsets are relative to the start of the document list
	list := b[listOffset:]
	r = parse.NewBinaryReaderBytes(list)
	numEntries := r.ReadUint16()
	if uint32(len(list)) < 2+12*uint32(numEntries) {
		return nil, fmt.Errorf("SVG: bad document list")
	}

	records := make([]DocumentRecord, numEntries)
	for i := 0; i < int(numEntries); i++ {
		startGlyphID := r.ReadUint16()
		endGlyphID := r.ReadUint16()
		docOffset := r.ReadUint32()
		docLength := r.ReadUint32()
		if endGlyphID < startGlyphID {
			return nil, fmt.Errorf("SVG: bad glyph range for document record %d", i)
		} else if uint32(len(list)) < docOffset || uint32(len(list))-docOffset < docLength {
			return nil, fmt.Errorf("SVG: bad document range for document record %d", i)
		}
		records[i] = DocumentRecord{
			StartGlyphID: startGlyphID,
			EndGlyphID:   endGlyphID,
			data:         list[docOffset : docOffset+docLength],
		}
	}
	return &Table{records}, nil
}

// Find returns the first record in table order whose glyph range includes glyphID. Ranges may overlap, later matches are not considered.
func (t *Table) Find(glyphID uint16) (DocumentRecord, bool) {
	for _, rec := range t.Records {
		if rec.StartGlyphID <= glyphID && glyphID <= rec.EndGlyphID {
			return rec, true
		}
	}
	return DocumentRecord{}, false
}
