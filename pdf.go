package main

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 10  // Margin in mm
	pdfLineHeight = 7   // Row height in mm
	pdfFontSize   = 10
)

// pdfColumnWidths are fractions of the printable width, in tableHeader order.
var pdfColumnWidths = []float64{0.15, 0.45, 0.2, 0.2}

// generatePDF draws the result table as a bordered grid on an A4 page.
func generatePDF(t ResultTable, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	usable := float64(pdfPageWidth - 2*pdfMargin)

	pdf.SetFont("Helvetica", "B", pdfFontSize+2)
	pdf.CellFormat(usable, pdfLineHeight, "Test cases and detailed information", "", 1, "L", false, 0, "")
	pdf.Ln(pdfLineHeight / 2)

	for i, rec := range t.records() {
		if i == 0 {
			pdf.SetFont("Helvetica", "B", pdfFontSize)
			pdf.SetFillColor(230, 230, 230)
		} else {
			pdf.SetFont("Helvetica", "", pdfFontSize)
		}
		for col, text := range rec {
			align := "R"
			if col == 1 {
				align = "L"
			}
			pdf.CellFormat(usable*pdfColumnWidths[col], pdfLineHeight, text, "1", 0, align, i == 0, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", outputPath, err)
	}
	return nil
}
