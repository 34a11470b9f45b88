package render

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/runnerr0/familydays/internal/config"
)

const (
	pointsPerInch = 72.0
	lineSpacing   = 1.2
)

// PDFRenderer lays a Document out on fixed-size pages using the core PDF
// fonts.
type PDFRenderer struct {
	cfg      config.DocumentConfig
	compress bool
}

// NewPDFRenderer returns a renderer for the given document settings.
func NewPDFRenderer(cfg config.DocumentConfig) *PDFRenderer {
	return &PDFRenderer{cfg: cfg, compress: true}
}

// Render implements Renderer.
func (r *PDFRenderer) Render(w io.Writer, doc Document) error {
	c := r.cfg
	margin := c.Margin * pointsPerInch

	pdf := fpdf.New("P", "pt", c.PageSize, "")
	pdf.SetCompression(r.compress)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("familydays", true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	// Core fonts are cp1252, report text is UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(c.FontFamily, "B", c.TitleSize)
	pdf.MultiCell(0, c.TitleSize*lineSpacing, tr(doc.Title), "", "C", false)
	pdf.Ln(c.TitleSize * 0.5)

	for i, s := range doc.Sections {
		if i > 0 {
			pdf.Ln(c.SectionSpacing * pointsPerInch)
		}

		pdf.SetFont(c.FontFamily, "B", c.HeadingSize)
		pdf.CellFormat(0, c.HeadingSize*lineSpacing, tr(s.Heading), "", 1, "L", false, 0, "")

		pdf.SetFont(c.FontFamily, "", c.BodySize)
		for _, line := range s.Lines {
			pdf.MultiCell(0, c.BodySize*lineSpacing, tr(line), "", "L", false)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
