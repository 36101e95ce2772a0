package wizard

import "fmt"

// Step - шаг визарда. Номера шагов сохранены как внешний словарь (callback data, логи).
type Step int

const (
	StepCategory Step = 1
	StepBrand    Step = 2
	StepModel    Step = 3
	StepRepair   Step = 4
	StepFinalize Step = 5
	StepSuccess  Step = 6
	StepIdentify Step = 10 // Помощник определения модели, доступен только с шага 1
)

func (s Step) String() string {
	switch s {
	case StepCategory:
		return "category"
	case StepBrand:
		return "brand"
	case StepModel:
		return "model"
	case StepRepair:
		return "repair"
	case StepFinalize:
		return "finalize"
	case StepSuccess:
		return "success"
	case StepIdentify:
		return "identify"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// event - действие пользователя, меняющее шаг
type event string

const (
	evPickCategory  event = "pick_category"
	evPickFindModel event = "pick_find_model"
	evPickBrand     event = "pick_brand"
	evPickModel     event = "pick_model"
	evPickRepair    event = "pick_repair"
	evFoundModel    event = "found_model"
	evKeepSearching event = "keep_searching"
	evBack          event = "back"
	evSubmitted     event = "submitted"
)

// transitions - полная таблица переходов. Reset и Start задают шаг напрямую.
var transitions = map[Step]map[event]Step{
	StepCategory: {
		evPickCategory:  StepBrand,
		evPickFindModel: StepIdentify,
		evBack:          StepCategory,
	},
	StepBrand: {
		evPickBrand: StepModel,
		evBack:      StepCategory,
	},
	StepModel: {
		evPickModel: StepRepair,
		evBack:      StepBrand,
	},
	StepRepair: {
		evPickRepair: StepFinalize,
		evBack:       StepModel,
	},
	StepFinalize: {
		evSubmitted: StepSuccess,
		evBack:      StepRepair,
	},
	StepSuccess: {
		evBack: StepFinalize,
	},
	StepIdentify: {
		evFoundModel:    StepModel,
		evKeepSearching: StepBrand,
		evBack:          StepCategory,
	},
}

// next возвращает шаг после события или false, если переход не разрешён
func next(from Step, ev event) (Step, bool) {
	to, ok := transitions[from][ev]
	return to, ok
}
