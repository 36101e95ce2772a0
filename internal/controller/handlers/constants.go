package handlers

// Ограничения длины текстового ввода
const (
	// Поиск бренда или модели
	SearchMaxLength = 50

	// Поля формы заявки
	FieldMaxLength   = 100
	AddressMaxLength = 300

	// Бренды, модели, серии, ремонты и слоты
	CatalogNameMaxLength = 60

	// Тексты страницы
	ContentMaxLength = 1000
)

// Разделитель категории и поиска в параметре /start
const startPayloadSeparator = "--"
