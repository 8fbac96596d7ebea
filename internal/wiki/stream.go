// Package wiki streams pages out of a MediaWiki XML export and extracts
// template invocations from their wikitext.
package wiki

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Page is one corpus entry: the page title and the wikitext of its
// latest revision.
type Page struct {
	Title string
	Text  string
}

// Reader streams pages from a MediaWiki XML export one at a time. Each
// page is decoded on demand and can be discarded by the caller after
// processing, so arbitrarily large dumps fit in a bounded working set.
type Reader struct {
	dec    *xml.Decoder
	closer io.Closer
}

// NewReader wraps an already-open XML stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: xml.NewDecoder(r)}
}

// Open opens the dump file at path for streaming.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}
	return &Reader{dec: xml.NewDecoder(f), closer: f}, nil
}

// Next returns the next page in the dump. It returns io.EOF when the
// stream is exhausted, which is the normal end condition rather than a
// failure.
func (r *Reader) Next() (Page, error) {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return Page{}, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "page" {
			continue
		}

		var raw struct {
			Title    string `xml:"title"`
			Revision struct {
				Text string `xml:"text"`
			} `xml:"revision"`
		}
		if err := r.dec.DecodeElement(&raw, &start); err != nil {
			return Page{}, fmt.Errorf("decoding page: %w", err)
		}
		return Page{Title: raw.Title, Text: raw.Revision.Text}, nil
	}
}

// Close closes the underlying file, if Open created one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
