package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer turns a laid-out Document into PDF bytes. It is the only
// piece that knows about the PDF backend.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

const (
	pageMarginMM   = 18.0
	bodyFontSize   = 11.0
	bodyLineHeight = 5.5
)

func (r *PDFRenderer) Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // cp1252 for the French accents
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.SetAutoPageBreak(false, pageMarginMM)

	pageW, pageH := pdf.GetPageSize()

	for i, page := range doc.Pages {
		pdf.AddPage()

		if i == 0 {
			// Title block: name, subtitle, optional recipient, separator.
			pdf.SetFont("Helvetica", "B", 24)
			pdf.SetTextColor(236, 72, 153)
			pdf.CellFormat(0, 12, tr(doc.Title), "", 1, "C", false, 0, "")

			pdf.SetFont("Helvetica", "", 15)
			pdf.SetTextColor(107, 114, 128)
			pdf.CellFormat(0, 9, tr(doc.Subtitle), "", 1, "C", false, 0, "")

			if doc.RecipientLine != "" {
				pdf.SetFont("Helvetica", "", 11)
				pdf.SetTextColor(156, 163, 175)
				pdf.CellFormat(0, 7, tr(doc.RecipientLine), "", 1, "C", false, 0, "")
			}

			pdf.Ln(4)
			pdf.SetDrawColor(252, 231, 243)
			pdf.SetLineWidth(0.7)
			y := pdf.GetY()
			pdf.Line(pageMarginMM, y, pageW-pageMarginMM, y)
			pdf.Ln(6)
		}

		pdf.SetTextColor(55, 65, 81)
		for _, line := range page.Lines {
			pdf.SetX(pageMarginMM)
			for _, span := range line {
				style := ""
				if span.Bold {
					style = "B"
				}
				pdf.SetFont("Helvetica", style, bodyFontSize)
				pdf.Write(bodyLineHeight, tr(span.Text))
			}
			pdf.Ln(bodyLineHeight)
		}

		// Footer pinned to a fixed offset on every page.
		pdf.SetY(pageH - pageMarginMM + 4)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(156, 163, 175)
		pdf.CellFormat(0, 5, tr(doc.Footer), "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	return buf.Bytes(), nil
}
