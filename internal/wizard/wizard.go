package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"go.uber.org/zap"
)

// CatalogReader - чтение каталога для шагов 2-4
type CatalogReader interface {
	ListBrands(category model.Category) []string
	ListModels(brand string, category model.Category) model.ModelList
	ListRepairs(category model.Category, brand, modelName string) []model.RepairAction
}

// ScheduleReader - эффективные слоты даты
type ScheduleReader interface {
	ResolveSlots(date string) []string
}

// Gateway - отправка заявок
type Gateway interface {
	SendInquiry(ctx context.Context, inquiry model.Inquiry) (*model.SubmissionResult, error)
	SendAppointment(ctx context.Context, appointment model.Appointment) (*model.SubmissionResult, error)
}

// IdentifyTab - вкладка помощника определения модели
type IdentifyTab string

const (
	TabIOS     IdentifyTab = "ios"
	TabAndroid IdentifyTab = "android"
)

// SubmitStatus - состояние кнопки отправки, отдельно для запроса и записи
type SubmitStatus int

const (
	SubmitIdle SubmitStatus = iota
	SubmitPending
	SubmitSucceeded
	SubmitFailed
)

// Deps - зависимости визарда
type Deps struct {
	Catalog       CatalogReader
	Schedule      ScheduleReader
	Gateway       Gateway
	FallbackPhone string
	OnReset       func()           // Вызывается после Reset
	Now           func() time.Time // Для проверки прошедших дат
	Logger        *zap.Logger
}

// Wizard - визард записи на ремонт одного пользователя
type Wizard struct {
	mu         sync.Mutex
	deps       Deps
	step       Step
	sel        model.Selection
	search     string
	tab        IdentifyTab
	status     map[model.RequestType]SubmitStatus
	submitted  model.RequestType
	generation uint64
}

func New(deps Deps) *Wizard {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Wizard{
		deps:   deps,
		step:   StepCategory,
		tab:    TabIOS,
		status: make(map[model.RequestType]SubmitStatus),
	}
}

// Step возвращает текущий шаг
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Selection возвращает копию выбора пользователя
func (w *Wizard) Selection() model.Selection {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sel
}

// Search возвращает текущую строку поиска
func (w *Wizard) Search() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.search
}

// Tab возвращает активную вкладку помощника
func (w *Wizard) Tab() IdentifyTab {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tab
}

// Status возвращает состояние отправки заявки данного вида
func (w *Wizard) Status(kind model.RequestType) SubmitStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status[kind]
}

// SubmittedKind возвращает вид последней успешно отправленной заявки
func (w *Wizard) SubmittedKind() model.RequestType {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitted
}

// Start открывает визард с предвыбранной категорией и, возможно, поиском.
// Поиск с "iphone" или "samsung" сразу ведёт к моделям бренда.
func (w *Wizard) Start(category model.Category, search string) error {
	if _, ok := model.ParseCategory(string(category)); !ok {
		return ErrUnknownCategory
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.sel.Brand, w.sel.Model, w.sel.Repair = "", "", ""

	if category == model.CategoryFindModel {
		w.sel.Category = model.CategorySmartphone
		w.search = ""
		w.step = StepIdentify
		return nil
	}

	w.sel.Category = category
	w.search = search
	w.step = StepBrand

	lower := strings.ToLower(search)
	switch {
	case strings.Contains(lower, "iphone"):
		w.sel.Category, w.sel.Brand = model.CategorySmartphone, "Apple"
		w.step = StepModel
	case strings.Contains(lower, "samsung"):
		w.sel.Category, w.sel.Brand = model.CategorySmartphone, "Samsung"
		w.step = StepModel
	}

	w.deps.Logger.Debug("Wizard started",
		zap.String("category", string(category)),
		zap.String("search", search),
		zap.Stringer("step", w.step))
	return nil
}

// PickCategory выбирает категорию на шаге 1. find_model уводит в помощник определения модели.
func (w *Wizard) PickCategory(category model.Category) error {
	if _, ok := model.ParseCategory(string(category)); !ok {
		return ErrUnknownCategory
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if category == model.CategoryFindModel {
		if err := w.fire(evPickFindModel); err != nil {
			return err
		}
		w.sel.Category = model.CategorySmartphone
		w.sel.Brand, w.sel.Model = "", ""
		return nil
	}

	if err := w.fire(evPickCategory); err != nil {
		return err
	}
	w.sel.Category = category
	w.sel.Brand, w.sel.Model = "", ""
	w.search = ""
	return nil
}

// PickBrand выбирает бренд на шаге 2
func (w *Wizard) PickBrand(brand string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.fire(evPickBrand); err != nil {
		return err
	}
	w.sel.Brand = brand
	w.sel.Model = ""
	w.search = ""
	return nil
}

// PickModel выбирает модель на шаге 3
func (w *Wizard) PickModel(modelName string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.fire(evPickModel); err != nil {
		return err
	}
	w.sel.Model = modelName
	w.search = ""
	return nil
}

// PickRepair выбирает вид ремонта на шаге 4 (сохраняется название)
func (w *Wizard) PickRepair(repair string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.fire(evPickRepair); err != nil {
		return err
	}
	w.sel.Repair = repair
	return nil
}

// SetIdentifyTab переключает вкладку помощника. На переходы из помощника вкладка не влияет.
func (w *Wizard) SetIdentifyTab(tab IdentifyTab) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepIdentify {
		return ErrInvalidTransition
	}
	w.tab = tab
	return nil
}

// FoundModel - пользователь нашёл модель: переход к моделям Apple
func (w *Wizard) FoundModel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.fire(evFoundModel); err != nil {
		return err
	}
	w.sel.Category = model.CategorySmartphone
	w.sel.Brand = "Apple"
	w.sel.Model = ""
	return nil
}

// KeepSearching - пользователь продолжает поиск: переход к выбору бренда
func (w *Wizard) KeepSearching() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.fire(evKeepSearching); err != nil {
		return err
	}
	w.sel.Category = model.CategorySmartphone
	w.sel.Brand = ""
	w.sel.Model = ""
	return nil
}

// Back возвращает на предыдущий шаг. С шага 1 и шага 6 назад идти некуда.
func (w *Wizard) Back() Step {
	w.mu.Lock()
	defer w.mu.Unlock()

	_ = w.fire(evBack)
	return w.step
}

// Reset очищает выбор и возвращает на шаг 1
func (w *Wizard) Reset() {
	w.mu.Lock()
	w.step = StepCategory
	w.sel = model.Selection{}
	w.search = ""
	w.tab = TabIOS
	w.status = make(map[model.RequestType]SubmitStatus)
	w.submitted = ""
	w.generation++
	onReset := w.deps.OnReset
	w.mu.Unlock()

	if onReset != nil {
		onReset()
	}
}

// SetSearch задаёт строку поиска для брендов и моделей
func (w *Wizard) SetSearch(term string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.search = strings.TrimSpace(term)
}

// Brands возвращает бренды выбранной категории с учётом поиска
func (w *Wizard) Brands() []string {
	w.mu.Lock()
	category, search := w.sel.Category, w.search
	w.mu.Unlock()

	if category == "" {
		return []string{}
	}
	return model.FilterNames(w.deps.Catalog.ListBrands(category), search)
}

// Models возвращает модели выбранного бренда с учётом поиска
func (w *Wizard) Models() model.ModelList {
	w.mu.Lock()
	sel, search := w.sel, w.search
	w.mu.Unlock()

	if sel.Brand == "" {
		return model.FlatModels()
	}
	return w.deps.Catalog.ListModels(sel.Brand, sel.Category).Filter(search)
}

// Repairs возвращает виды ремонта выбранного устройства
func (w *Wizard) Repairs() []model.RepairAction {
	w.mu.Lock()
	sel := w.sel
	w.mu.Unlock()

	return w.deps.Catalog.ListRepairs(sel.Category, sel.Brand, sel.Model)
}

// SetField заполняет поле формы на шаге 5. Смена даты сбрасывает выбранное время.
func (w *Wizard) SetField(field model.Field, value string) error {
	value = strings.TrimSpace(value)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepFinalize {
		return ErrInvalidTransition
	}

	switch field {
	case model.FieldName:
		w.sel.Name = value
	case model.FieldPhone:
		w.sel.Phone = value
	case model.FieldEmail:
		w.sel.Email = value
	case model.FieldAddress:
		w.sel.Address = value
	case model.FieldDate:
		if err := w.checkDate(value); err != nil {
			return err
		}
		w.sel.Date = value
		w.sel.Time = ""
	case model.FieldTime:
		if value != "" {
			if w.sel.Date == "" {
				return ErrNoDate
			}
			if !containsSlot(w.deps.Schedule.ResolveSlots(w.sel.Date), value) {
				return ErrSlotUnavailable
			}
		}
		w.sel.Time = value
	default:
		return ErrUnknownField
	}
	return nil
}

// AvailableSlots возвращает слоты выбранной даты
func (w *Wizard) AvailableSlots() []string {
	w.mu.Lock()
	date := w.sel.Date
	w.mu.Unlock()

	if date == "" {
		return []string{}
	}
	return w.deps.Schedule.ResolveSlots(date)
}

// Validate проверяет обязательные поля заявки
func (w *Wizard) Validate(kind model.RequestType) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return validate(&w.sel, kind)
}

// Submit отправляет заявку. Во время вызова шлюза визард не заблокирован:
// можно перемещаться и редактировать поля, повторная отправка того же вида отклоняется.
func (w *Wizard) Submit(ctx context.Context, kind model.RequestType) (*model.SubmissionResult, error) {
	w.mu.Lock()
	if w.step != StepFinalize {
		w.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	if err := validate(&w.sel, kind); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	if w.status[kind] == SubmitPending {
		w.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	w.status[kind] = SubmitPending
	sel := w.sel
	generation := w.generation
	w.mu.Unlock()

	result, err := w.send(ctx, kind, sel)
	if err == nil && (result == nil || !result.Success) {
		err = fmt.Errorf("Failed to send %s", kind)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if generation != w.generation {
		w.deps.Logger.Info("Submission finished after wizard reset",
			zap.String("kind", string(kind)),
			zap.Bool("success", err == nil))
		if err != nil {
			return nil, &SubmitError{Kind: kind, Err: err, FallbackPhone: w.deps.FallbackPhone}
		}
		return result, nil
	}

	if err != nil {
		w.status[kind] = SubmitFailed
		w.deps.Logger.Warn("Submission failed",
			zap.String("kind", string(kind)),
			zap.String("brand", sel.Brand),
			zap.String("model", sel.Model),
			zap.Error(err))
		return nil, &SubmitError{Kind: kind, Err: err, FallbackPhone: w.deps.FallbackPhone}
	}

	w.status[kind] = SubmitSucceeded
	w.submitted = kind
	// Заявка принята: экран успеха показывается, даже если пользователь успел уйти с шага 5
	w.step, _ = next(StepFinalize, evSubmitted)

	w.deps.Logger.Info("Submission accepted",
		zap.String("kind", string(kind)),
		zap.String("method", result.Method))

	return result, nil
}

func (w *Wizard) send(ctx context.Context, kind model.RequestType, sel model.Selection) (*model.SubmissionResult, error) {
	switch kind {
	case model.RequestInquiry:
		return w.deps.Gateway.SendInquiry(ctx, model.Inquiry{
			Name:   sel.Name,
			Phone:  sel.Phone,
			Email:  sel.Email,
			Brand:  sel.Brand,
			Model:  sel.Model,
			Repair: sel.Repair,
		})
	case model.RequestAppointment:
		return w.deps.Gateway.SendAppointment(ctx, model.Appointment{
			Name:    sel.Name,
			Phone:   sel.Phone,
			Email:   sel.Email,
			Address: sel.Address,
			Date:    sel.Date,
			Time:    sel.Time,
			Brand:   sel.Brand,
			Model:   sel.Model,
			Repair:  sel.Repair,
		})
	default:
		return nil, errors.New("unknown request type")
	}
}

// fire применяет событие к текущему шагу. Вызывается под w.mu.
func (w *Wizard) fire(ev event) error {
	to, ok := next(w.step, ev)
	if !ok {
		return ErrInvalidTransition
	}
	w.step = to
	return nil
}

func (w *Wizard) checkDate(value string) error {
	if value == "" {
		return nil
	}
	date, err := time.Parse(model.DateLayout, value)
	if err != nil {
		return ErrInvalidDate
	}
	now := w.deps.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return ErrDateInPast
	}
	return nil
}

// RequiredFields возвращает обязательные поля заявки данного вида
func RequiredFields(kind model.RequestType) []model.Field {
	if kind == model.RequestInquiry {
		return []model.Field{model.FieldName, model.FieldPhone}
	}
	return []model.Field{model.FieldName, model.FieldPhone, model.FieldAddress, model.FieldDate, model.FieldTime}
}

func validate(sel *model.Selection, kind model.RequestType) error {
	if kind != model.RequestInquiry && kind != model.RequestAppointment {
		return fmt.Errorf("unknown request type %q", kind)
	}
	var missing []model.Field
	for _, f := range RequiredFields(kind) {
		if sel.Value(f) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Kind: kind, Missing: missing}
	}
	return nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
