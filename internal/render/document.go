package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/runnerr0/familydays/internal/calendar"
)

// Document is the renderer-neutral content of the reminder sheet.
type Document struct {
	Title    string
	Sections []Section
}

// Section is one month: a heading followed by one line per event.
type Section struct {
	Heading string
	Lines   []string
}

// Renderer writes a Document in some output format.
type Renderer interface {
	Render(w io.Writer, doc Document) error
}

// Compose builds a Document with one section per bucket, keeping bucket order.
func Compose(title string, buckets []calendar.MonthBucket) Document {
	doc := Document{Title: title}
	for _, b := range buckets {
		s := Section{Heading: b.Month.String()}
		for _, e := range b.Events {
			s.Lines = append(s.Lines, e.Line())
		}
		doc.Sections = append(doc.Sections, s)
	}
	return doc
}

// WriteFile renders doc in memory and writes it to path. Nothing is written
// if rendering fails.
func WriteFile(path string, doc Document, r Renderer) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
