package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/font"
	"github.com/tdewolff/minify/v2"
	minifysvg "github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/otsvg"
)

type Dump struct {
	Index  int    `short:"i" default:"0" desc:"Font index for font collections"`
	Char   string `short:"c" desc:"Dump the document for a Unicode character instead of a glyph ID"`
	Minify bool   `short:"m" desc:"Minify SVG documents before printing"`
	Input  string `index:"0" desc:"Input font file (TTF, OTF, TTC, WOFF, WOFF2, or EOT)"`
	Glyph  string `index:"1" desc:"Glyph ID to dump, or 'all' to dump every document"`
}

func main() {
	root := argp.NewCmd(&Dump{}, "SVG table dumper for TTF and OTF files")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Dump) Run() error {
	if cmd.Input == "" {
		fmt.Fprintln(os.Stderr, "Usage: svgdump path/to/font.ttf [glyph id]")
		os.Exit(2)
	}
	if err := cmd.dump(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return nil
}

func (cmd *Dump) dump(w io.Writer) error {
	// validate the glyph selector before any font data is read
	all := false
	var glyphID uint16
	if cmd.Glyph != "" && cmd.Char != "" {
		return fmt.Errorf("cannot pass both a glyph id and a character")
	} else if cmd.Glyph == "all" {
		all = true
	} else if cmd.Glyph != "" {
		id, err := strconv.ParseUint(cmd.Glyph, 10, 16)
		if err != nil {
			return fmt.Errorf("bad glyph id %s: must be 'all' or an integer in 0-65535", cmd.Glyph)
		}
		glyphID = uint16(id)
	}

	b, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}
	sfnt, err := font.ParseFont(b, cmd.Index)
	if err != nil {
		return err
	}
	data, ok := sfnt.Tables["SVG "]
	if !ok {
		return otsvg.ErrNotFound
	}
	svg, err := otsvg.Parse(data)
	if err != nil {
		return err
	}

	if cmd.Char != "" {
		rs := []rune(cmd.Char)
		if len(rs) != 1 {
			return fmt.Errorf("char must be one Unicode character")
		}
		glyphID = sfnt.GlyphIndex(rs[0])
	}

	if cmd.Glyph == "" && cmd.Char == "" {
		return hashes(w, svg)
	}

	var m *minify.M
	if cmd.Minify {
		m = minify.New()
		m.AddFunc("image/svg+xml", minifysvg.Minify)
	}
	return dumpGlyph(w, svg, glyphID, all, m)
}

// hashes prints the SHA-256 digest of every document's stored bytes, compressed documents are hashed as stored. Digests are per record, a document shared by several records is hashed for each.
func hashes(w io.Writer, svg *otsvg.Table) error {
	for _, rec := range svg.Records {
		hash := sha256.Sum256(rec.Data())
		if _, err := fmt.Fprintf(w, "%d → %d: %x\n", rec.StartGlyphID, rec.EndGlyphID, hash[:]); err != nil {
			return err
		}
	}
	return nil
}

// dumpGlyph prints either every document in table order, or the document of the first record that includes glyphID. No matching record is not an error.
func dumpGlyph(w io.Writer, svg *otsvg.Table, glyphID uint16, all bool, m *minify.M) error {
	if all {
		for _, rec := range svg.Records {
			if err := printDocument(w, rec, m); err != nil {
				return err
			}
		}
		return nil
	}
	if rec, ok := svg.Find(glyphID); ok {
		return printDocument(w, rec, m)
	}
	return nil
}

func printDocument(w io.Writer, rec otsvg.DocumentRecord, m *minify.M) error {
	doc, err := rec.Document()
	if err != nil {
		return err
	}
	if m != nil {
		if doc, err = m.String("image/svg+xml", doc); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, doc)
	return err
}
