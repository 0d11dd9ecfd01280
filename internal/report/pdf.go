package report

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// WritePDF renders the monthly report as a single A4 page, mirroring the
// shareable summary: a colored header band, the profile fields and the
// hours/goal/studies figures.
func (s Summary) WritePDF(path string) error {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	// Header band.
	doc.SetFillColor(59, 130, 246)
	doc.Rect(0, 0, 210, 40, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 22)
	doc.Text(20, 20, "PIONEIRO EU SOU")
	doc.SetFont("Helvetica", "", 10)
	doc.Text(20, 30, tr("RELATÓRIO MENSAL DE SERVIÇO DE CAMPO"))

	doc.SetTextColor(40, 40, 40)
	doc.SetFont("Helvetica", "B", 16)
	doc.Text(20, 55, tr(fmt.Sprintf("Relatório: %s %d", strings.ToUpper(s.MonthName), s.Year)))
	doc.SetDrawColor(220, 220, 220)
	doc.Line(20, 60, 190, 60)

	doc.SetFontSize(11)
	doc.SetTextColor(60, 60, 60)

	y := 75.0
	for _, row := range [][2]string{
		{"Pioneiro(a):", s.Profile.Name},
		{"Congregação:", s.Profile.Congregation},
		{"Grupo:", s.Profile.GroupNumber},
		{"Designação:", string(s.Profile.Type)},
	} {
		doc.SetFont("Helvetica", "B", 11)
		doc.Text(20, y, tr(row[0]))
		doc.SetFont("Helvetica", "", 11)
		doc.Text(55, y, tr(row[1]))
		y += 8
	}

	y += 6
	doc.SetFont("Helvetica", "B", 13)
	doc.Text(20, y, tr("Atividade do mês"))
	y += 10

	hours := fmt.Sprintf("%dh", s.Hours)
	if s.MinutesRem > 0 {
		hours = fmt.Sprintf("%dh %dmin", s.Hours, s.MinutesRem)
	}
	for _, row := range [][2]string{
		{"Horas realizadas:", hours},
		{"Meta mensal:", fmt.Sprintf("%dh", s.Profile.Goals.Monthly)},
		{"Progresso:", fmt.Sprintf("%d%%", s.GoalPercent)},
		{"Estudos bíblicos:", fmt.Sprintf("%d", s.Studies)},
	} {
		doc.SetFont("Helvetica", "B", 11)
		doc.Text(20, y, tr(row[0]))
		doc.SetFont("Helvetica", "", 11)
		doc.Text(60, y, tr(row[1]))
		y += 8
	}

	// Progress bar.
	y += 4
	doc.SetFillColor(226, 232, 240)
	doc.Rect(20, y, 170, 4, "F")
	if s.GoalPercent >= 100 {
		doc.SetFillColor(16, 185, 129)
	} else {
		doc.SetFillColor(59, 130, 246)
	}
	doc.Rect(20, y, 170*float64(s.GoalPercent)/100, 4, "F")

	return doc.OutputFileAndClose(path)
}
