package common

import (
	"bytes"
	"image/color"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth       = 1400
	imageHeight      = 900
	headerHeight     = 110
	legendHeight     = 60
	dayPaddingX      = 10
	slotHeight       = 44.0
	slotGap          = 10.0
	slotBorderRadius = 6.0
	shadowOffset     = 3.0
	totalDaysInWeek  = 7
	maxLabelRunes    = 24
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	todayBgColor   = color.NRGBA{255, 99, 71, 125}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}
	closedDayColor = color.NRGBA{190, 190, 190, 255}

	slotDefaultColor = color.RGBA{133, 193, 85, 220}
	slotCustomColor  = color.RGBA{100, 149, 237, 220}
	slotTextColor    = color.RGBA{20, 24, 28, 230}
	slotShadowColor  = color.RGBA{0, 0, 0, 20}
	closedTextColor  = color.RGBA{120, 40, 50, 255}

	legendItemColor = color.RGBA{70, 74, 78, 220}
)

// DayAvailability - слоты одного дня для картинки недели
type DayAvailability struct {
	Date     string
	Slots    []string
	Disabled bool
	Custom   bool
}

// GenerateWeekImage рисует PNG с доступными слотами на 7 дней.
// days - ровно те дни, что попадают на картинку, по порядку.
func GenerateWeekImage(days []DayAvailability, today time.Time) ([]byte, error) {
	dc := createCanvas()
	dayWidth := imageWidth / totalDaysInWeek
	todayKey := today.Format("2006-01-02")

	drawHeader(dc, days)
	for i, day := range days {
		if i >= totalDaysInWeek {
			break
		}
		x := float64(i * dayWidth)
		drawDay(dc, day, x, dayWidth, i, day.Date == todayKey)
	}
	drawLegend(dc)

	return encodeImage(dc)
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	return dc
}

// drawHeader рисует заголовок с диапазоном дат
func drawHeader(dc *gg.Context, days []DayAvailability) {
	title := "Availability"
	if len(days) > 0 {
		title += ": " + formatting.FormatDate(days[0].Date) + " - " + formatting.FormatDate(days[len(days)-1].Date)
	}

	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, imageWidth/2, float64(headerHeight)/3, 0.5, 0.5)
}

// drawDay рисует колонку дня: фон, заголовок и карточки слотов
func drawDay(dc *gg.Context, day DayAvailability, x float64, dayWidth, dayIndex int, isToday bool) {
	y := float64(headerHeight)
	height := float64(imageHeight - headerHeight - legendHeight)

	switch {
	case isToday:
		dc.SetColor(todayBgColor)
	case day.Disabled:
		dc.SetColor(closedDayColor)
	case dayIndex%2 == 0:
		dc.SetColor(evenDayColor)
	default:
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), height)
	dc.Fill()

	dc.SetColor(textColor)
	dc.DrawStringAnchored(formatting.FormatDate(day.Date), x+float64(dayWidth)/2, y-20, 0.5, 0.5)

	if day.Disabled {
		dc.SetColor(closedTextColor)
		dc.DrawStringAnchored("CLOSED", x+float64(dayWidth)/2, y+height/2, 0.5, 0.5)
		return
	}

	fill := slotDefaultColor
	if day.Custom {
		fill = slotCustomColor
	}

	slotWidth := float64(dayWidth - dayPaddingX*2)
	slotY := y + slotGap
	for _, slot := range day.Slots {
		if slotY+slotHeight > y+height {
			break
		}
		drawSlot(dc, slot, x+dayPaddingX, slotY, slotWidth, fill)
		slotY += slotHeight + slotGap
	}
}

// drawSlot рисует карточку одного слота
func drawSlot(dc *gg.Context, label string, x, y, width float64, fill color.RGBA) {
	dc.SetColor(slotShadowColor)
	dc.DrawRoundedRectangle(x+shadowOffset, y+shadowOffset, width, slotHeight, slotBorderRadius)
	dc.Fill()

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, y, width, slotHeight, slotBorderRadius)
	dc.Fill()

	dc.SetColor(darkenColor(fill, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, y, width, slotHeight, slotBorderRadius)
	dc.Stroke()

	dc.SetColor(slotTextColor)
	dc.DrawStringAnchored(truncateLabel(label), x+width/2, y+slotHeight/2, 0.5, 0.5)
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawLegend рисует легенду внизу
func drawLegend(dc *gg.Context) {
	items := []struct {
		Label string
		Clr   color.Color
	}{
		{"Default slots", slotDefaultColor},
		{"Custom schedule", slotCustomColor},
		{"Closed", closedDayColor},
		{"Today", todayBgColor},
	}

	boxW, boxH := 20.0, 14.0
	x := 20.0
	y := float64(imageHeight) - float64(legendHeight)/2 - boxH/2

	for _, item := range items {
		dc.SetColor(item.Clr)
		dc.DrawRoundedRectangle(x, y, boxW, boxH, 3)
		dc.Fill()

		dc.SetColor(legendItemColor)
		dc.DrawStringAnchored(item.Label, x+boxW+8, y+boxH/2, 0, 0.5)
		w, _ := dc.MeasureString(item.Label)
		x += boxW + 8 + w + 30
	}
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= maxLabelRunes {
		return label
	}
	return string(runes[:maxLabelRunes-3]) + "..."
}
