package model

// DateLayout - формат дат расписания (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Availability - снимок доступности. Ключ хранения availability_data.
type Availability struct {
	TimeSlots      []string            `json:"timeSlots"`      // Слоты по умолчанию
	DisabledDates  []string            `json:"disabledDates"`  // Выключенные даты
	CustomSchedule map[string][]string `json:"customSchedule"` // Переопределения слотов по датам
}

// Clone делает глубокую копию
func (a *Availability) Clone() *Availability {
	out := &Availability{
		TimeSlots:      append([]string{}, a.TimeSlots...),
		DisabledDates:  append([]string{}, a.DisabledDates...),
		CustomSchedule: make(map[string][]string, len(a.CustomSchedule)),
	}
	for date, slots := range a.CustomSchedule {
		out.CustomSchedule[date] = append([]string{}, slots...)
	}
	return out
}

// IsDisabled проверяет что дата выключена
func (a *Availability) IsDisabled(date string) bool {
	return contains(a.DisabledDates, date)
}

// Resolve возвращает эффективные слоты даты: выключена -> пусто, есть переопределение -> оно, иначе слоты по умолчанию
func (a *Availability) Resolve(date string) []string {
	if a.IsDisabled(date) {
		return []string{}
	}
	if override, ok := a.CustomSchedule[date]; ok {
		return append([]string{}, override...)
	}
	return append([]string{}, a.TimeSlots...)
}
