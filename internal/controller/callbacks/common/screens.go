package common

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
	"github.com/go-telegram/bot/models"
)

// StepView - всё, что нужно для отрисовки текущего шага визарда
type StepView struct {
	Step          wizard.Step
	Selection     model.Selection
	Search        string
	Tab           wizard.IdentifyTab
	Brands        []string
	Models        model.ModelList
	Repairs       []model.RepairAction
	Inquiry       wizard.SubmitStatus
	Appointment   wizard.SubmitStatus
	Submitted     model.RequestType
	EditMode      bool
	HeroTitle     string
	HeroSubtitle  string
	FallbackPhone string
}

// DateOption - дата на экране выбора даты
type DateOption struct {
	Date      string
	Available bool
}

// BuildStepScreen формирует экран текущего шага
func BuildStepScreen(v StepView) (string, *models.InlineKeyboardMarkup) {
	switch v.Step {
	case wizard.StepBrand:
		return BuildBrandScreen(v)
	case wizard.StepModel:
		return BuildModelScreen(v)
	case wizard.StepRepair:
		return BuildRepairScreen(v)
	case wizard.StepFinalize:
		return BuildFinalizeScreen(v)
	case wizard.StepSuccess:
		return BuildSuccessScreen(v)
	case wizard.StepIdentify:
		return BuildIdentifyScreen(v)
	default:
		return BuildCategoryScreen(v)
	}
}

// BuildCategoryScreen формирует шаг 1: выбор категории устройства
func BuildCategoryScreen(v StepView) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	if v.HeroTitle != "" {
		sb.WriteString("<b>" + html.EscapeString(v.HeroTitle) + "</b>\n")
	}
	if v.HeroSubtitle != "" {
		sb.WriteString(html.EscapeString(v.HeroSubtitle) + "\n")
	}
	sb.WriteString("\n" + stepHeader(wizard.StepCategory) + "What needs fixing?")

	buttons := make([]models.InlineKeyboardButton, 0, len(model.Categories))
	for _, c := range model.Categories {
		buttons = append(buttons, keyboard.Button(c.Emoji+" "+c.Name, callbacktypes.BookCategory+string(c.ID)))
	}

	return sb.String(), keyboard.NewBuilder().Grid(buttons, 2).Build()
}

// BuildBrandScreen формирует шаг 2: выбор бренда
func BuildBrandScreen(v StepView) (string, *models.InlineKeyboardMarkup) {
	text := stepHeader(wizard.StepBrand) +
		fmt.Sprintf("Select your %s brand", strings.ToLower(v.Selection.Category.DisplayName())) +
		searchLine(v.Search)
	if len(v.Brands) == 0 {
		text += "\n\nNo brands found."
	}

	kb := keyboard.NewBuilder()
	if v.EditMode {
		for i, brand := range v.Brands {
			kb.Row(
				keyboard.Button(brand, callbacktypes.BookBrand+strconv.Itoa(i)),
				keyboard.DeleteButton(callbacktypes.AdminBrandDel+strconv.Itoa(i)),
			)
		}
		kb.Row(keyboard.AddButton("Add brand", callbacktypes.AdminBrandAdd))
	} else {
		buttons := make([]models.InlineKeyboardButton, 0, len(v.Brands))
		for i, brand := range v.Brands {
			buttons = append(buttons, keyboard.Button(brand, callbacktypes.BookBrand+strconv.Itoa(i)))
		}
		kb.Grid(buttons, 2)
	}

	addSearchRow(kb, v.Search)
	kb.AddBackButton(callbacktypes.BookBack)
	return text, kb.Build()
}

// BuildModelScreen формирует шаг 3: выбор модели. Серии показываются заголовками
func BuildModelScreen(v StepView) (string, *models.InlineKeyboardMarkup) {
	text := stepHeader(wizard.StepModel) +
		fmt.Sprintf("Select your <b>%s</b> model", html.EscapeString(v.Selection.Brand)) +
		searchLine(v.Search)
	if v.Models.Len() == 0 {
		text += "\n\nNo models found."
	}

	kb := keyboard.NewBuilder()
	idx := 0
	modelButtons := func(names []string) {
		if v.EditMode {
			for _, name := range names {
				kb.Row(
					keyboard.Button(name, callbacktypes.BookModel+strconv.Itoa(idx)),
					keyboard.DeleteButton(callbacktypes.AdminModelDel+strconv.Itoa(idx)),
				)
				idx++
			}
			return
		}
		buttons := make([]models.InlineKeyboardButton, 0, len(names))
		for _, name := range names {
			buttons = append(buttons, keyboard.Button(name, callbacktypes.BookModel+strconv.Itoa(idx)))
			idx++
		}
		kb.Grid(buttons, 2)
	}

	if v.Models.IsGrouped() {
		for si, series := range v.Models.Series() {
			kb.Row(keyboard.NoopButton("— " + series.Name + " —"))
			modelButtons(series.Models)
			if v.EditMode {
				kb.Row(keyboard.AddButton("Add to "+series.Name,
					callbacktypes.AdminModelAdd+callbacktypes.ModelAddSeries+strconv.Itoa(si)))
			}
		}
	} else {
		modelButtons(v.Models.Flat())
	}

	if v.EditMode {
		if !v.Models.IsGrouped() {
			kb.Row(keyboard.AddButton("Add model", callbacktypes.AdminModelAdd+callbacktypes.ModelAddFlat))
		}
		kb.Row(keyboard.AddButton("New series", callbacktypes.AdminModelAdd+callbacktypes.ModelAddNewSeries))
	}

	addSearchRow(kb, v.Search)
	kb.AddBackButton(callbacktypes.BookBack)
	return text, kb.Build()
}

// ModelOptions раскладывает список моделей в порядке кнопок экрана моделей.
// series[i] - серия модели names[i], пустая строка для плоского списка.
func ModelOptions(ml model.ModelList) (names []string, series []string) {
	if !ml.IsGrouped() {
		names = ml.Flat()
		return names, make([]string, len(names))
	}
	for _, s := range ml.Series() {
		for _, name := range s.Models {
			names = append(names, name)
			series = append(series, s.Name)
		}
	}
	return names, series
}

// SeriesNames возвращает названия серий в порядке отображения
func SeriesNames(ml model.ModelList) []string {
	var out []string
	for _, s := range ml.Series() {
		out = append(out, s.Name)
	}
	return out
}

// BuildRepairScreen формирует шаг 4: выбор ремонта
func BuildRepairScreen(v StepView) (string, *models.InlineKeyboardMarkup) {
	text := stepHeader(wizard.StepRepair) +
		fmt.Sprintf("What's wrong with your <b>%s %s</b>?",
			html.EscapeString(v.Selection.Brand), html.EscapeString(v.Selection.Model))

	kb := keyboard.NewBuilder()
	for i, repair := range v.Repairs {
		if v.EditMode {
			kb.Row(
				keyboard.Button(repair.Name, callbacktypes.BookRepair+strconv.Itoa(i)),
				keyboard.DeleteButton(callbacktypes.AdminRepairDel+callbacktypes.RepairScopeDevice+":"+strconv.Itoa(i)),
			)
			continue
		}
		kb.Row(keyboard.Button(repair.Name, callbacktypes.BookRepair+strconv.Itoa(i)))
	}
	if v.EditMode {
		kb.Row(keyboard.AddButton("Add repair for this device",
			callbacktypes.AdminRepairAdd+callbacktypes.RepairScopeDevice))
	}

	kb.AddBackButton(callbacktypes.BookBack)
	return text, kb.Build()
}

// BuildFinalizeScreen формирует шаг 5: контакты, дата и отправка
func BuildFinalizeScreen(v StepView) (string, *models.InlineKeyboardMarkup) {
	sel := v.Selection

	var sb strings.Builder
	sb.WriteString(stepHeader(wizard.StepFinalize) + "Almost done!\n\n")
	sb.WriteString(fmt.Sprintf("🔧 <b>%s %s</b>\n", html.EscapeString(sel.Brand), html.EscapeString(sel.Model)))
	sb.WriteString(fmt.Sprintf("🛠 %s\n\n", html.EscapeString(sel.Repair)))

	fields := []struct {
		emoji string
		field model.Field
		value string
	}{
		{"👤", model.FieldName, sel.Name},
		{"📞", model.FieldPhone, sel.Phone},
		{"✉️", model.FieldEmail, sel.Email},
		{"🏠", model.FieldAddress, sel.Address},
		{"📅", model.FieldDate, formatting.FormatDate(sel.Date)},
		{"🕐", model.FieldTime, sel.Time},
	}
	for _, f := range fields {
		value := "—"
		if f.value != "" {
			value = html.EscapeString(f.value)
		}
		sb.WriteString(fmt.Sprintf("%s %s: %s\n", f.emoji, f.field.Label(), value))
	}

	sb.WriteString("\n<i>A quick quote needs your name and phone. A technician visit also needs the address, date and time.</i>\n")
	sb.WriteString("\n✅ All repairs come with a warranty.")

	timeCallback := callbacktypes.BookTimes
	if sel.Date == "" {
		timeCallback = callbacktypes.BookDates + "0"
	}

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("👤 Name", callbacktypes.BookField+string(model.FieldName)),
			keyboard.Button("📞 Phone", callbacktypes.BookField+string(model.FieldPhone)),
		).
		Row(
			keyboard.Button("✉️ Email", callbacktypes.BookField+string(model.FieldEmail)),
			keyboard.Button("🏠 Address", callbacktypes.BookField+string(model.FieldAddress)),
		).
		Row(
			keyboard.Button("📅 Date", callbacktypes.BookDates+"0"),
			keyboard.Button("🕐 Time", timeCallback),
		).
		Row(keyboard.Button(formatting.SubmitButtonText(model.RequestInquiry, v.Inquiry),
			callbacktypes.BookSubmit+string(model.RequestInquiry))).
		Row(keyboard.Button(formatting.SubmitButtonText(model.RequestAppointment, v.Appointment),
			callbacktypes.BookSubmit+string(model.RequestAppointment))).
		Row(keyboard.Button("⬅️ Change selection", callbacktypes.BookBack)).
		AddStartOverButton()

	return sb.String(), kb.Build()
}

// BuildDatePickerScreen формирует выбор даты визита: неделя начиная с offset
func BuildDatePickerScreen(dates []DateOption, offset int) (string, *models.InlineKeyboardMarkup) {
	text := "📅 <b>Choose a date</b>\n\nDays marked 🚫 are fully booked or closed."

	buttons := make([]models.InlineKeyboardButton, 0, len(dates))
	for _, d := range dates {
		label := formatting.FormatDate(d.Date)
		if !d.Available {
			buttons = append(buttons, keyboard.NoopButton("🚫 "+label))
			continue
		}
		buttons = append(buttons, keyboard.Button(label, callbacktypes.BookDate+d.Date))
	}

	kb := keyboard.NewBuilder().
		Grid(buttons, 2).
		Row(keyboard.WeekPagination(callbacktypes.BookDates, offset)...).
		AddBackButton(callbacktypes.BookShow)
	return text, kb.Build()
}

// BuildSlotPickerScreen формирует выбор времени для выбранной даты
func BuildSlotPickerScreen(date string, slots []string, current string) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder()
	if len(slots) == 0 {
		text := fmt.Sprintf("🕐 <b>%s</b>\n\nNo time slots available for this date.", formatting.FormatDateLong(date))
		kb.Row(keyboard.Button("📅 Choose another date", callbacktypes.BookDates+"0")).
			AddBackButton(callbacktypes.BookShow)
		return text, kb.Build()
	}

	text := fmt.Sprintf("🕐 <b>%s</b>\n\nChoose a time window:", formatting.FormatDateLong(date))
	for i, slot := range slots {
		label := slot
		if slot == current {
			label = "✅ " + slot
		}
		kb.Row(keyboard.Button(label, callbacktypes.BookTime+strconv.Itoa(i)))
	}
	kb.AddBackButton(callbacktypes.BookShow)
	return text, kb.Build()
}

// BuildSuccessScreen формирует шаг 6: заявка отправлена
func BuildSuccessScreen(v StepView) (string, *models.InlineKeyboardMarkup) {
	var text string
	if v.Submitted == model.RequestAppointment {
		text = fmt.Sprintf("🎉 <b>Appointment requested!</b>\n\nThanks, %s! We'll confirm your visit shortly.",
			html.EscapeString(v.Selection.Name))
	} else {
		text = "🎉 <b>Inquiry sent!</b>\n\nWe'll get back to you with a quote shortly."
	}
	text += fmt.Sprintf("\n\nYour request has been forwarded to our technician at <b>%s</b>. We'll contact you at %s.",
		html.EscapeString(v.FallbackPhone), html.EscapeString(v.Selection.Phone))

	kb := keyboard.NewBuilder().Row(keyboard.Button("🏠 Back to home", callbacktypes.BookReset))
	return text, kb.Build()
}

// BuildIdentifyScreen формирует помощник определения модели
func BuildIdentifyScreen(v StepView) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("❓ <b>Find your model</b>\n\n")
	if v.Tab == wizard.TabAndroid {
		sb.WriteString("1. Open <b>Settings</b>\n")
		sb.WriteString("2. Tap <b>About phone</b>\n")
		sb.WriteString("3. Look for <b>Model name</b> or <b>Model number</b>")
	} else {
		sb.WriteString("1. Open <b>Settings</b>\n")
		sb.WriteString("2. Tap <b>General</b> → <b>About</b>\n")
		sb.WriteString("3. Your model is shown next to <b>Model Name</b>")
	}

	iosLabel, androidLabel := "iPhone", "Android"
	if v.Tab == wizard.TabAndroid {
		androidLabel = "✅ " + androidLabel
	} else {
		iosLabel = "✅ " + iosLabel
	}

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button(iosLabel, callbacktypes.BookTab+string(wizard.TabIOS)),
			keyboard.Button(androidLabel, callbacktypes.BookTab+string(wizard.TabAndroid)),
		).
		Row(keyboard.Button("✅ I found my model", callbacktypes.BookFound)).
		Row(keyboard.Button("🔍 Keep searching", callbacktypes.BookKeep)).
		AddBackButton(callbacktypes.BookBack)
	return sb.String(), kb.Build()
}

// stepHeader возвращает строку "Step N of 5" для основных шагов
func stepHeader(step wizard.Step) string {
	if step < wizard.StepCategory || step > wizard.StepFinalize {
		return ""
	}
	return fmt.Sprintf("<b>Step %d of %d</b>\n", int(step), int(wizard.StepFinalize))
}

func searchLine(search string) string {
	if search == "" {
		return ""
	}
	return "\n🔍 Filter: <code>" + html.EscapeString(search) + "</code>"
}

func addSearchRow(kb *keyboard.Builder, search string) {
	if search == "" {
		kb.Row(keyboard.Button("🔍 Search", callbacktypes.BookSearch))
		return
	}
	kb.Row(
		keyboard.Button("🔍 New search", callbacktypes.BookSearch),
		keyboard.Button("✖️ Clear search", callbacktypes.BookSearchClear),
	)
}
