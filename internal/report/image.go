package report

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
)

// WritePNG renders the monthly summary card as an image, the share-as-picture
// counterpart of the PDF. Uses the library's built-in face, so no font files
// are required on the host.
func (s Summary) WritePNG(path string) error {
	const (
		w       = 640
		h       = 400
		margin  = 32.0
		barArea = 120.0
	)

	dc := gg.NewContext(w, h)

	// Card background.
	dc.SetRGB255(30, 58, 138)
	dc.Clear()

	dc.SetRGB255(255, 255, 255)
	dc.DrawString("PIONEIRO EU SOU", margin, margin+8)
	dc.DrawString(fmt.Sprintf("%s %d", strings.ToUpper(s.MonthName), s.Year), margin, margin+28)

	dc.SetRGB255(191, 219, 254)
	dc.DrawString(fmt.Sprintf("%s - Grupo %s", s.Profile.Congregation, s.Profile.GroupNumber), margin, margin+48)

	dc.SetRGB255(255, 255, 255)
	hours := fmt.Sprintf("Horas realizadas: %dh", s.Hours)
	if s.MinutesRem > 0 {
		hours = fmt.Sprintf("Horas realizadas: %dh %dmin", s.Hours, s.MinutesRem)
	}
	dc.DrawString(hours, margin, margin+88)
	dc.DrawString(fmt.Sprintf("Meta mensal: %dh (%d%%)", s.Profile.Goals.Monthly, s.GoalPercent), margin, margin+108)
	dc.DrawString(fmt.Sprintf("Estudos biblicos: %d", s.Studies), margin, margin+128)

	// Goal progress bar.
	barY := margin + 148
	dc.SetRGB255(255, 255, 255)
	dc.DrawRectangle(margin, barY, w-2*margin, 10)
	dc.Stroke()
	if s.GoalPercent >= 100 {
		dc.SetRGB255(52, 211, 153)
	} else {
		dc.SetRGB255(96, 165, 250)
	}
	dc.DrawRectangle(margin, barY, (w-2*margin)*float64(s.GoalPercent)/100, 10)
	dc.Fill()

	// Monthly evolution bars.
	var max float64
	for _, pt := range s.Series {
		if pt.Minutes > max {
			max = pt.Minutes
		}
	}
	if len(s.Series) > 0 && max > 0 {
		slot := (w - 2*margin) / float64(len(s.Series))
		baseY := float64(h) - margin - 16
		for i, pt := range s.Series {
			bh := pt.Minutes / max * barArea
			x := margin + float64(i)*slot
			dc.SetRGB255(96, 165, 250)
			dc.DrawRectangle(x+8, baseY-bh, slot-16, bh)
			dc.Fill()
			dc.SetRGB255(191, 219, 254)
			dc.DrawString(pt.Month[5:], x+slot/2-8, baseY+14)
		}
	}

	return dc.SavePNG(path)
}
