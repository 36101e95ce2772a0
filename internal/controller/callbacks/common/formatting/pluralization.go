package formatting

import "fmt"

// PluralizeSlots возвращает "1 slot" или "N slots"
func PluralizeSlots(count int) string {
	return pluralize(count, "slot", "slots")
}

// PluralizeModels возвращает "1 model" или "N models"
func PluralizeModels(count int) string {
	return pluralize(count, "model", "models")
}

func pluralize(count int, one, many string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, one)
	}
	return fmt.Sprintf("%d %s", count, many)
}
