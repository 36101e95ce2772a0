package model

// Встроенные данные, которыми заполняются хранилища при первом запуске

var defaultBrands = map[string][]string{
	"smartphone": {
		"Apple", "Samsung", "Google", "Motorola", "OnePlus", "LG", "Sony", "Xiaomi",
		"Huawei", "Oppo", "Realme", "Asus", "BlackBerry", "CAT", "Honor",
		"HTC", "Lenovo", "Microsoft", "Alcatel", "Fairphone", "Nokia",
	},
	"tablet": {
		"Apple", "Samsung", "Microsoft", "Amazon", "Lenovo", "Huawei", "Asus", "LG", "Google", "Sony",
	},
	"watch": {
		"Apple", "Samsung", "Google", "Fitbit", "LG", "Motorola", "Huawei",
	},
	"laptop": {
		"Apple", "Microsoft", "Dell", "HP", "Lenovo", "ASUS", "Acer",
	},
}

var defaultRepairs = []RepairAction{
	{ID: "screen", Name: "Screen Repair"},
	{ID: "lcd", Name: "LCD Display / Touchscreen"},
	{ID: "battery", Name: "Battery Replacement"},
	{ID: "charging", Name: "Charging Port Repair"},
	{ID: "camera_back", Name: "Back-facing Camera"},
	{ID: "camera_front", Name: "Front-facing Camera"},
	{ID: "camera_lens", Name: "Camera Lens Repair"},
	{ID: "earspeaker", Name: "Earspeaker Repair"},
	{ID: "loudspeaker", Name: "Loudspeaker Repair"},
	{ID: "mic", Name: "Microphone Repair"},
	{ID: "back_cover", Name: "Back Cover / Glass"},
	{ID: "housing", Name: "Housing / Mid-frame"},
	{ID: "water_damage", Name: "Water Damage Investigation"},
	{ID: "investigation", Name: "Standard Investigation / Other Issue"},
}

func defaultModels() map[string]map[string]ModelList {
	return map[string]map[string]ModelList{
		"Apple": {
			"smartphone": FlatModels(
				"iPhone 16 Pro Max", "iPhone 16 Pro", "iPhone 16 Plus", "iPhone 16",
				"iPhone 15 Pro Max", "iPhone 15 Pro", "iPhone 15 Plus", "iPhone 15",
				"iPhone 14 Pro Max", "iPhone 14 Pro", "iPhone 14 Plus", "iPhone 14",
				"iPhone 13 Pro Max", "iPhone 13 Pro", "iPhone 13 Mini", "iPhone 13",
				"iPhone 12 Pro Max", "iPhone 12 Pro", "iPhone 12 Mini", "iPhone 12",
				"iPhone 11 Pro Max", "iPhone 11 Pro", "iPhone 11", "iPhone SE (2022)", "iPhone SE (2020)",
			),
			"tablet": FlatModels(
				"iPad Pro 12.9 (6th Gen)", "iPad Pro 11 (4th Gen)", "iPad Air (5th Gen)",
				"iPad (10th Gen)", "iPad Mini (6th Gen)", "iPad Pro 12.9 (5th Gen)",
				"iPad Pro 11 (3rd Gen)", "iPad Air (4th Gen)", "iPad (9th Gen)",
			),
			"watch": FlatModels(
				"Apple Watch Ultra 2", "Apple Watch Series 9", "Apple Watch SE (2nd Gen)",
				"Apple Watch Ultra", "Apple Watch Series 8", "Apple Watch Series 7",
				"Apple Watch Series 6", "Apple Watch Series 5", "Apple Watch Series 4",
			),
			"laptop": FlatModels(
				`MacBook Pro 16", M3`, `MacBook Pro 14", M3`, `MacBook Air 15", M2`,
				`MacBook Air 13", M2`, `MacBook Pro 13", M2`, `MacBook Pro 16", M1`,
				`MacBook Pro 14", M1`, "MacBook Air, M1",
			),
		},
		"Samsung": {
			"smartphone": GroupedModels(
				Series{Name: "Galaxy S Series", Models: []string{
					"Galaxy S24 Ultra", "Galaxy S24+", "Galaxy S24",
					"Galaxy S23 Ultra", "Galaxy S23+", "Galaxy S23",
					"Galaxy S22 Ultra", "Galaxy S22+", "Galaxy S22",
					"Galaxy S21 Ultra", "Galaxy S21+", "Galaxy S21 FE", "Galaxy S21",
					"Galaxy S20 Ultra", "Galaxy S20+", "Galaxy S20",
					"Galaxy S10+", "Galaxy S10", "Galaxy S10e",
				}},
				Series{Name: "Galaxy Z Series", Models: []string{
					"Galaxy Z Fold 6", "Galaxy Z Flip 6",
					"Galaxy Z Fold 5", "Galaxy Z Flip 5",
					"Galaxy Z Fold 4", "Galaxy Z Flip 4",
					"Galaxy Z Fold 3", "Galaxy Z Flip 3",
					"Galaxy Z Fold 2", "Galaxy Z Flip",
				}},
				Series{Name: "Galaxy Note Series", Models: []string{
					"Galaxy Note 20 Ultra", "Galaxy Note 20",
					"Galaxy Note 10+", "Galaxy Note 10",
					"Galaxy Note 9", "Galaxy Note 8",
				}},
				Series{Name: "Galaxy A Series", Models: []string{
					"Galaxy A54", "Galaxy A53", "Galaxy A52",
					"Galaxy A34", "Galaxy A33", "Galaxy A32",
					"Galaxy A24", "Galaxy A23", "Galaxy A22",
					"Galaxy A14", "Galaxy A13", "Galaxy A12",
				}},
			),
			"tablet": FlatModels(
				"Galaxy Tab S9 Ultra", "Galaxy Tab S9+", "Galaxy Tab S9",
				"Galaxy Tab S8 Ultra", "Galaxy Tab S8+", "Galaxy Tab S8",
				"Galaxy Tab A9", "Galaxy Tab A8",
			),
			"watch": FlatModels(
				"Galaxy Watch 6 Classic", "Galaxy Watch 6", "Galaxy Watch 5 Pro",
				"Galaxy Watch 5", "Galaxy Watch 4 Classic", "Galaxy Watch 4",
			),
		},
		"Google": {
			"smartphone": FlatModels(
				"Pixel 8 Pro", "Pixel 8", "Pixel 7 Pro", "Pixel 7", "Pixel 7a",
				"Pixel 6 Pro", "Pixel 6", "Pixel 6a",
			),
			"watch": FlatModels("Pixel Watch 2", "Pixel Watch"),
		},
	}
}

// DefaultCatalog возвращает встроенный каталог
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Brands:       make(map[string][]string, len(defaultBrands)),
		Models:       defaultModels(),
		Repairs:      append([]RepairAction{}, defaultRepairs...),
		ModelRepairs: make(map[string][]RepairAction),
	}
	for cat, brands := range defaultBrands {
		c.Brands[cat] = append([]string{}, brands...)
	}
	return c
}

// FallbackBrands возвращает встроенный список брендов категории
func FallbackBrands(category Category) []string {
	return append([]string{}, defaultBrands[string(category)]...)
}

// DefaultAvailability возвращает расписание по умолчанию
func DefaultAvailability() *Availability {
	return &Availability{
		TimeSlots: []string{
			"9:00 AM - 11:00 AM",
			"11:00 AM - 1:00 PM",
			"1:00 PM - 3:00 PM",
			"3:00 PM - 5:00 PM",
		},
		DisabledDates:  []string{},
		CustomSchedule: make(map[string][]string),
	}
}

// Идентификаторы редактируемых текстов
const (
	ContentHeroTitle       = "heroTitle"
	ContentHeroSubtitle    = "heroSubtitle"
	ContentServicesTitle   = "servicesTitle"
	ContentServicesSubtext = "servicesSubtitle"
	ContentHowItWorksTitle = "howItWorksTitle"
)

// DefaultContent возвращает встроенные тексты
func DefaultContent() *SiteContent {
	return &SiteContent{
		Texts: map[string]string{
			ContentHeroTitle:       "Reliable Certified Phone Repair",
			ContentHeroSubtitle:    "Professional repair for your electronic devices. We bring your tech back to life with quality parts and expert service.",
			ContentServicesTitle:   "Our Services",
			ContentServicesSubtext: "We specialize in professional repairs for all your favorite devices. From screen replacements to battery upgrades.",
			ContentHowItWorksTitle: "How It Works",
		},
		SectionOrder: []string{"home", "booking", "services", "how-it-works"},
	}
}
