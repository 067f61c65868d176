package infra

// pdf.go — Year-overview timesheet export using go-pdf/fpdf.
// Renders one A4 page with a month/hours/milkings table plus year totals.

import (
	"bytes"
	"fmt"

	"github.com/vanozi/superleuk-backend/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateYearOverviewPDF renders the year overview for one employee and
// returns the PDF bytes.
func GenerateYearOverviewPDF(name string, year int, months []dto.MonthData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, fmt.Sprintf("Urenoverzicht %d", year), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 7, name, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.5 // month
	col2 := contentW * 0.25
	col3 := contentW * 0.25

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 8, "Maand", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 8, "Uren", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 8, "Melkbeurten", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	var totalHours float64
	var totalMilkings int
	for _, m := range months {
		pdf.CellFormat(col1, 7, m.Month, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 7, fmt.Sprintf("%.2f", m.Hours), "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 7, fmt.Sprintf("%d", m.Milkings), "", 1, "R", false, 0, "")
		totalHours += m.Hours
		totalMilkings += m.Milkings
	}

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 8, "Totaal", "T", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 8, fmt.Sprintf("%.2f", totalHours), "T", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 8, fmt.Sprintf("%d", totalMilkings), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render year overview: %w", err)
	}
	return buf.Bytes(), nil
}
