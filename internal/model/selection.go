package model

// Field - поле формы на шаге оформления
type Field string

const (
	FieldName    Field = "name"
	FieldPhone   Field = "phone"
	FieldEmail   Field = "email"
	FieldAddress Field = "address"
	FieldDate    Field = "date"
	FieldTime    Field = "time"
)

// Label возвращает название поля для пользователя
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldPhone:
		return "Phone"
	case FieldEmail:
		return "Email"
	case FieldAddress:
		return "Address"
	case FieldDate:
		return "Preferred date"
	case FieldTime:
		return "Time"
	default:
		return string(f)
	}
}

// Selection - рабочее состояние визарда записи
type Selection struct {
	Category Category `json:"category"`
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Repair   string   `json:"repair"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Address  string   `json:"address"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
}

// Value возвращает значение поля формы
func (s *Selection) Value(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldPhone:
		return s.Phone
	case FieldEmail:
		return s.Email
	case FieldAddress:
		return s.Address
	case FieldDate:
		return s.Date
	case FieldTime:
		return s.Time
	default:
		return ""
	}
}

// Device возвращает ключ выбранного устройства
func (s *Selection) Device() DeviceKey {
	return DeviceKey{Category: s.Category, Brand: s.Brand, Model: s.Model}
}
