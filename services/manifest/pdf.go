package manifest

import (
	"bytes"
	"fmt"
	"time"

	"washex/models"

	"github.com/jung-kurt/gofpdf"
)

// rowsPerPage keeps manifests readable on a clipboard.
const rowsPerPage = 10

// PDFRenderer renders manifest rows as a landscape A4 table.
type PDFRenderer struct{}

// NewPDFRenderer returns the default manifest renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var columns = []struct {
	header string
	width  float64
}{
	{"#", 8},
	{"Order", 32},
	{"Customer", 35},
	{"Address", 62},
	{"Phone", 25},
	{"Slot / Due", 28},
	{"Items", 52},
	{"Agent", 25},
	{"Notes", 10},
}

func (r *PDFRenderer) Render(title string, day time.Time, rows []models.ManifestRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 10)

	for start := 0; start < len(rows) || start == 0; start += rowsPerPage {
		r.addPage(pdf, title, day)
		end := start + rowsPerPage
		if end > len(rows) {
			end = len(rows)
		}
		for _, row := range rows[start:end] {
			r.addRow(pdf, row)
		}
		if len(rows) == 0 {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.CellFormat(0, 10, "No orders scheduled.", "", 1, "L", false, 0, "")
			break
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render manifest PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) addPage(pdf *gofpdf.Fpdf, title string, day time.Time) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s - %s", title, day.Format("Mon, 02 Jan 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(col.width, 7, col.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 8)
}

func (r *PDFRenderer) addRow(pdf *gofpdf.Fpdf, row models.ManifestRow) {
	values := []string{
		fmt.Sprintf("%d", row.Seq),
		row.OrderCode,
		row.CustomerName,
		row.Address,
		row.Phone,
		row.Summary,
		row.Items,
		row.AgentName,
		row.Notes,
	}
	for i, col := range columns {
		pdf.CellFormat(col.width, 9, truncate(values[i], col.width), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// truncate trims text that would overflow its cell; roughly 1.6mm per
// character at 8pt Helvetica. Cuts on rune boundaries so multi-byte
// names never leave a mangled tail in the cell.
func truncate(s string, width float64) string {
	max := int(width / 1.6)
	runes := []rune(s)
	if max < 4 || len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
