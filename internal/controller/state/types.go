package state

import (
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Ввод текста в визарде записи
	StateSearch     = UserState(callbacktypes.StateSearch)
	StateFieldInput = UserState(callbacktypes.StateFieldInput)

	// Редактирование каталога
	StateAdminBrand  = UserState(callbacktypes.StateAdminBrand)
	StateAdminModel  = UserState(callbacktypes.StateAdminModel)
	StateAdminRepair = UserState(callbacktypes.StateAdminRepair)

	// Управление доступностью
	StateAdminSlot         = UserState(callbacktypes.StateAdminSlot)
	StateAdminOverrideSlot = UserState(callbacktypes.StateAdminOverrideSlot)
	StateAdminDate         = UserState(callbacktypes.StateAdminDate)

	// Редактирование текстов
	StateAdminContent = UserState(callbacktypes.StateAdminContent)
)

// Session хранит визард и временные данные диалога одного пользователя
type Session struct {
	State    UserState
	Data     map[string]interface{} // Временные данные для текущего диалога
	Wizard   *wizard.Wizard
	EditMode bool
	LastSeen time.Time
}
