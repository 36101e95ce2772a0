package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/admin"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/service"
	"go.uber.org/zap"
)

func main() {
	now := time.Now()
	logger := zap.NewNop()

	// Создаем тестовое расписание: закрытая дата и дата со своими слотами
	availability := service.NewAvailabilityService(model.DefaultAvailability(), nil, logger)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(model.DateLayout)
	}
	availability.ToggleDateDisabled(day(2))
	availability.SetDateOverride(day(4), []string{"10:00 AM - 12:00 PM", "2:00 PM - 6:00 PM"})

	h := &callbacktypes.Handler{
		Availability: availability,
		Now:          func() time.Time { return now },
		Logger:       logger,
	}
	days := admin.WeekAvailability(h, 0)

	// Генерируем изображение
	imageData, err := common.GenerateWeekImage(days, now)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	// Сохраняем в файл
	filename := "week.png"
	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📅 Период: %s - %s\n", days[0].Date, days[len(days)-1].Date)
	for _, d := range days {
		fmt.Printf("   %s: %d slots (closed=%t, custom=%t)\n", d.Date, len(d.Slots), d.Disabled, d.Custom)
	}
}
