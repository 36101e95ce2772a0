package model

// Category - верхний уровень каталога устройств
type Category string

const (
	CategorySmartphone Category = "smartphone"
	CategoryTablet     Category = "tablet"
	CategoryLaptop     Category = "laptop"
	CategoryFindModel  Category = "find_model" // Псевдо-категория: ведёт в помощник определения модели
)

// CategoryInfo описывает категорию для отображения
type CategoryInfo struct {
	ID    Category `json:"id"`
	Name  string   `json:"name"`
	Emoji string   `json:"emoji"`
}

// Categories - порядок отображения категорий на первом шаге
var Categories = []CategoryInfo{
	{ID: CategoryFindModel, Name: "Find Model", Emoji: "❓"},
	{ID: CategorySmartphone, Name: "Smartphone", Emoji: "📱"},
	{ID: CategoryTablet, Name: "Tablet", Emoji: "📲"},
	{ID: CategoryLaptop, Name: "Laptop", Emoji: "💻"},
}

// ParseCategory проверяет что строка является известной категорией
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c.ID) == s {
			return c.ID, true
		}
	}
	return "", false
}

// IsReal возвращает true для категорий, у которых есть данные в каталоге
func (c Category) IsReal() bool {
	return c == CategorySmartphone || c == CategoryTablet || c == CategoryLaptop
}

// DisplayName возвращает название категории
func (c Category) DisplayName() string {
	for _, info := range Categories {
		if info.ID == c {
			return info.Name
		}
	}
	return string(c)
}
