package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGateway struct {
	mu           sync.Mutex
	inquiries    []model.Inquiry
	appointments []model.Appointment
	err          error
	release      chan struct{}
	started      chan struct{}
}

func (g *fakeGateway) wait() {
	if g.started != nil {
		g.started <- struct{}{}
	}
	if g.release != nil {
		<-g.release
	}
}

func (g *fakeGateway) SendInquiry(_ context.Context, inquiry model.Inquiry) (*model.SubmissionResult, error) {
	g.wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.inquiries = append(g.inquiries, inquiry)
	return &model.SubmissionResult{Success: true, Method: "fake"}, nil
}

func (g *fakeGateway) SendAppointment(_ context.Context, appointment model.Appointment) (*model.SubmissionResult, error) {
	g.wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.appointments = append(g.appointments, appointment)
	return &model.SubmissionResult{Success: true, Method: "fake"}, nil
}

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	wizard       *Wizard
	gateway      *fakeGateway
	catalog      *service.CatalogService
	availability *service.AvailabilityService
	resets       int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	f := &fixture{
		gateway:      &fakeGateway{},
		catalog:      service.NewCatalogService(model.DefaultCatalog(), nil, logger),
		availability: service.NewAvailabilityService(model.DefaultAvailability(), nil, logger),
	}
	f.wizard = New(Deps{
		Catalog:       f.catalog,
		Schedule:      f.availability,
		Gateway:       f.gateway,
		FallbackPhone: "+1 (227) 259-7780",
		OnReset:       func() { f.resets++ },
		Now:           func() time.Time { return testNow },
		Logger:        logger,
	})
	return f
}

// toFinalize проводит визард до шага 5 с выбранным iPhone 15
func (f *fixture) toFinalize(t *testing.T) {
	t.Helper()
	require.NoError(t, f.wizard.PickCategory(model.CategorySmartphone))
	require.NoError(t, f.wizard.PickBrand("Apple"))
	require.NoError(t, f.wizard.PickModel("iPhone 15"))
	require.NoError(t, f.wizard.PickRepair("Screen Repair"))
	require.Equal(t, StepFinalize, f.wizard.Step())
}

func TestHappyPathToFinalize(t *testing.T) {
	f := newFixture(t)
	f.toFinalize(t)

	sel := f.wizard.Selection()
	assert.Equal(t, model.CategorySmartphone, sel.Category)
	assert.Equal(t, "Apple", sel.Brand)
	assert.Equal(t, "iPhone 15", sel.Model)
	assert.Equal(t, "Screen Repair", sel.Repair)
}

func TestStartInjection(t *testing.T) {
	tests := []struct {
		name     string
		category model.Category
		search   string
		step     Step
		brand    string
	}{
		{"iphone search", model.CategorySmartphone, "iPhone 13", StepModel, "Apple"},
		{"samsung search", model.CategoryTablet, "Samsung galaxy", StepModel, "Samsung"},
		{"generic search", model.CategorySmartphone, "pixel", StepBrand, ""},
		{"no search", model.CategoryLaptop, "", StepBrand, ""},
		{"find model", model.CategoryFindModel, "", StepIdentify, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			require.NoError(t, f.wizard.Start(tt.category, tt.search))
			assert.Equal(t, tt.step, f.wizard.Step())
			assert.Equal(t, tt.brand, f.wizard.Selection().Brand)
		})
	}
}

func TestStartIPhoneFiltersModels(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.wizard.Start(model.CategorySmartphone, "iPhone 13"))

	models := f.wizard.Models()
	assert.Equal(t, []string{"iPhone 13 Pro Max", "iPhone 13 Pro", "iPhone 13 Mini", "iPhone 13"}, models.All())
}

func TestStartUnknownCategory(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.wizard.Start("watch", ""), ErrUnknownCategory)
}

func TestIdentifyDetour(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.wizard.PickCategory(model.CategoryFindModel))
	assert.Equal(t, StepIdentify, f.wizard.Step())
	assert.Equal(t, model.CategorySmartphone, f.wizard.Selection().Category)

	require.NoError(t, f.wizard.SetIdentifyTab(TabAndroid))
	require.NoError(t, f.wizard.FoundModel())
	assert.Equal(t, StepModel, f.wizard.Step())
	assert.Equal(t, "Apple", f.wizard.Selection().Brand)

	f.wizard.Reset()
	require.NoError(t, f.wizard.PickCategory(model.CategoryFindModel))
	require.NoError(t, f.wizard.KeepSearching())
	assert.Equal(t, StepBrand, f.wizard.Step())
	assert.Empty(t, f.wizard.Selection().Brand)
}

func TestBackNavigation(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, StepCategory, f.wizard.Back())

	f.toFinalize(t)
	assert.Equal(t, StepRepair, f.wizard.Back())
	assert.Equal(t, StepModel, f.wizard.Back())
	assert.Equal(t, StepBrand, f.wizard.Back())
	assert.Equal(t, StepCategory, f.wizard.Back())

	require.NoError(t, f.wizard.PickCategory(model.CategoryFindModel))
	assert.Equal(t, StepCategory, f.wizard.Back())
}

func TestBackKeepsSelection(t *testing.T) {
	f := newFixture(t)
	f.toFinalize(t)
	f.wizard.Back()

	assert.Equal(t, "iPhone 15", f.wizard.Selection().Model)
}

func TestPickOnWrongStep(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.wizard.PickBrand("Apple"), ErrInvalidTransition)
	assert.ErrorIs(t, f.wizard.FoundModel(), ErrInvalidTransition)
	assert.ErrorIs(t, f.wizard.SetIdentifyTab(TabIOS), ErrInvalidTransition)
	assert.Equal(t, StepCategory, f.wizard.Step())
}

func TestPickBrandClearsSearch(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.wizard.PickCategory(model.CategorySmartphone))
	f.wizard.SetSearch("APP")
	assert.Equal(t, []string{"Apple"}, f.wizard.Brands())

	require.NoError(t, f.wizard.PickBrand("Apple"))
	assert.Empty(t, f.wizard.Search())
	assert.Equal(t, 25, f.wizard.Models().Len())
}

func TestBrandsFallBackToBuiltIn(t *testing.T) {
	f := newFixture(t)
	for _, b := range f.catalog.ListBrands(model.CategoryLaptop) {
		f.catalog.DeleteBrand(model.CategoryLaptop, b)
	}
	require.NoError(t, f.wizard.PickCategory(model.CategoryLaptop))

	assert.Equal(t, model.FallbackBrands(model.CategoryLaptop), f.wizard.Brands())
}

func TestRepairsUseDeviceList(t *testing.T) {
	f := newFixture(t)
	f.toFinalize(t)
	sel := f.wizard.Selection()
	device := sel.Device()
	added := f.catalog.AddRepairAction("Face ID Repair", &device)

	repairs := f.wizard.Repairs()
	assert.Equal(t, added, repairs[len(repairs)-1])
}

func TestDateChangeClearsTime(t *testing.T) {
	f := newFixture(t)
	f.toFinalize(t)

	require.NoError(t, f.wizard.SetField(model.FieldDate, "2025-03-12"))
	require.NoError(t, f.wizard.SetField(model.FieldTime, "9:00 AM - 11:00 AM"))
	require.NoError(t, f.wizard.SetField(model.FieldDate, "2025-03-13"))

	assert.Empty(t, f.wizard.Selection().Time)
}

func TestSetTimeRequiresAvailableSlot(t *testing.T) {
	f := newFixture(t)
	f.toFinalize(t)

	assert.ErrorIs(t, f.wizard.SetField(model.FieldTime, "9:00 AM - 11:00 AM"), ErrNoDate)

	f.availability.SetDateOverride("2025-03-12", []string{"6:00 PM - 7:00 PM"})
	require.NoError(t, f.wizard.SetField(model.FieldDate, "2025-03-12"))
	assert.Equal(t, []string{"6:00 PM - 7:00 PM"}, f.wizard.AvailableSlots())
	assert.ErrorIs(t, f.wizard.SetField(model.FieldTime, "9:00 AM - 11:00 AM"), ErrSlotUnavailable)
	assert.NoError(t, f.wizard.SetField(model.FieldTime, "6:00 PM - 7:00 PM"))

	f.availability.ToggleDateDisabled("2025-03-14")
	require.NoError(t, f.wizard.SetField(model.FieldDate, "2025-03-14"))
	assert.Empty(t, f.wizard.AvailableSlots())
}

func TestSetDateRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	f.toFinalize(t)

	assert.ErrorIs(t, f.wizard.SetField(model.FieldDate, "12/03/2025"), ErrInvalidDate)
	assert.ErrorIs(t, f.wizard.SetField(model.FieldDate, "2025-03-09"), ErrDateInPast)
	assert.NoError(t, f.wizard.SetField(model.FieldDate, "2025-03-10"))
}

func TestValidationBlocksGateway(t *testing.T) {
	f := newFixture(t)
	f.toFinalize(t)
	require.NoError(t, f.wizard.SetField(model.FieldName, "Ann"))

	_, err := f.wizard.Submit(context.Background(), model.RequestInquiry)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []model.Field{model.FieldPhone}, verr.Missing)
	assert.Equal(t, "Please fill in your name and phone number for the inquiry.", verr.UserMessage())
	assert.Empty(t, f.gateway.inquiries)
	assert.Equal(t, StepFinalize, f.wizard.Step())
}

func TestAppointmentValidation(t *testing.T) {
	f := newFixture(t)
	f.toFinalize(t)
	require.NoError(t, f.wizard.SetField(model.FieldName, "Ann"))
	require.NoError(t, f.wizard.SetField(model.FieldPhone, "555"))

	err := f.wizard.Validate(model.RequestAppointment)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []model.Field{model.FieldAddress, model.FieldDate, model.FieldTime}, verr.Missing)
	assert.NoError(t, f.wizard.Validate(model.RequestInquiry))
}

func TestSubmitInquirySuccess(t *testing.T) {
	f := newFixture(t)
	f.toFinalize(t)
	require.NoError(t, f.wizard.SetField(model.FieldName, "Ann"))
	require.NoError(t, f.wizard.SetField(model.FieldPhone, "555-0100"))

	result, err := f.wizard.Submit(context.Background(), model.RequestInquiry)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, StepSuccess, f.wizard.Step())
	assert.Equal(t, model.RequestInquiry, f.wizard.SubmittedKind())
	assert.Equal(t, SubmitSucceeded, f.wizard.Status(model.RequestInquiry))
	require.Len(t, f.gateway.inquiries, 1)
	assert.Equal(t, model.Inquiry{
		Name: "Ann", Phone: "555-0100", Brand: "Apple", Model: "iPhone 15", Repair: "Screen Repair",
	}, f.gateway.inquiries[0])

	assert.Equal(t, StepFinalize, f.wizard.Back())
	assert.Equal(t, "Ann", f.wizard.Selection().Name)
}

func TestSubmitAppointmentThenReset(t *testing.T) {
	f := newFixture(t)
	f.toFinalize(t)
	require.NoError(t, f.wizard.SetField(model.FieldName, "Ann"))
	require.NoError(t, f.wizard.SetField(model.FieldPhone, "555-0100"))
	require.NoError(t, f.wizard.SetField(model.FieldEmail, "ann@example.com"))
	require.NoError(t, f.wizard.SetField(model.FieldAddress, "1 Main St"))
	require.NoError(t, f.wizard.SetField(model.FieldDate, "2025-03-12"))
	slots := f.wizard.AvailableSlots()
	require.NotEmpty(t, slots)
	require.NoError(t, f.wizard.SetField(model.FieldTime, slots[0]))

	result, err := f.wizard.Submit(context.Background(), model.RequestAppointment)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, StepSuccess, f.wizard.Step())
	assert.Equal(t, model.RequestAppointment, f.wizard.SubmittedKind())
	require.Len(t, f.gateway.appointments, 1)
	assert.Equal(t, model.Appointment{
		Name: "Ann", Phone: "555-0100", Email: "ann@example.com", Address: "1 Main St",
		Date: "2025-03-12", Time: slots[0], Brand: "Apple", Model: "iPhone 15", Repair: "Screen Repair",
	}, f.gateway.appointments[0])

	f.wizard.Reset()

	assert.Equal(t, StepCategory, f.wizard.Step())
	assert.Equal(t, model.Selection{}, f.wizard.Selection())
	assert.Equal(t, SubmitIdle, f.wizard.Status(model.RequestAppointment))
	assert.Equal(t, 1, f.resets)
}

func TestSubmitFailureKeepsFields(t *testing.T) {
	f := newFixture(t)
	f.gateway.err = errors.New("quota exceeded")
	f.toFinalize(t)
	require.NoError(t, f.wizard.SetField(model.FieldName, "Ann"))
	require.NoError(t, f.wizard.SetField(model.FieldPhone, "555"))

	_, err := f.wizard.Submit(context.Background(), model.RequestInquiry)

	var serr *SubmitError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "There was an error submitting your inquiry: quota exceeded\n\nPlease try again or contact us directly at +1 (227) 259-7780.", serr.UserMessage())
	assert.Equal(t, StepFinalize, f.wizard.Step())
	assert.Equal(t, SubmitFailed, f.wizard.Status(model.RequestInquiry))
	assert.Equal(t, "Ann", f.wizard.Selection().Name)
}

func TestSubmitNotConfigured(t *testing.T) {
	f := newFixture(t)
	f.gateway.err = model.ErrGatewayNotConfigured
	f.toFinalize(t)
	require.NoError(t, f.wizard.SetField(model.FieldName, "Ann"))
	require.NoError(t, f.wizard.SetField(model.FieldPhone, "555"))

	_, err := f.wizard.Submit(context.Background(), model.RequestInquiry)

	var serr *SubmitError
	require.True(t, errors.As(err, &serr))
	assert.ErrorIs(t, err, model.ErrGatewayNotConfigured)
	assert.NotContains(t, serr.UserMessage(), "Web3Forms")
}

func TestSubmitInFlightIsPerKind(t *testing.T) {
	f := newFixture(t)
	f.gateway.release = make(chan struct{})
	f.gateway.started = make(chan struct{}, 2)
	f.toFinalize(t)
	require.NoError(t, f.wizard.SetField(model.FieldName, "Ann"))
	require.NoError(t, f.wizard.SetField(model.FieldPhone, "555"))

	done := make(chan error, 1)
	go func() {
		_, err := f.wizard.Submit(context.Background(), model.RequestInquiry)
		done <- err
	}()
	<-f.gateway.started

	assert.Equal(t, SubmitPending, f.wizard.Status(model.RequestInquiry))
	_, err := f.wizard.Submit(context.Background(), model.RequestInquiry)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	// редактирование не блокируется
	require.NoError(t, f.wizard.SetField(model.FieldAddress, "1 Main St"))

	// другой вид заявки проходит валидацию независимо
	_, err = f.wizard.Submit(context.Background(), model.RequestAppointment)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	close(f.gateway.release)
	require.NoError(t, <-done)
	assert.Equal(t, StepSuccess, f.wizard.Step())
}

func TestSuccessAfterResetDoesNotMoveWizard(t *testing.T) {
	f := newFixture(t)
	f.gateway.release = make(chan struct{})
	f.gateway.started = make(chan struct{}, 1)
	f.toFinalize(t)
	require.NoError(t, f.wizard.SetField(model.FieldName, "Ann"))
	require.NoError(t, f.wizard.SetField(model.FieldPhone, "555"))

	done := make(chan error, 1)
	go func() {
		_, err := f.wizard.Submit(context.Background(), model.RequestInquiry)
		done <- err
	}()
	<-f.gateway.started
	f.wizard.Reset()
	close(f.gateway.release)

	require.NoError(t, <-done)
	assert.Equal(t, StepCategory, f.wizard.Step())
	assert.Equal(t, SubmitIdle, f.wizard.Status(model.RequestInquiry))
}

func TestResetClearsEverything(t *testing.T) {
	f := newFixture(t)
	f.toFinalize(t)
	require.NoError(t, f.wizard.SetField(model.FieldName, "Ann"))
	f.wizard.SetSearch("x")

	f.wizard.Reset()

	assert.Equal(t, StepCategory, f.wizard.Step())
	assert.Equal(t, model.Selection{}, f.wizard.Selection())
	assert.Empty(t, f.wizard.Search())
	assert.Equal(t, TabIOS, f.wizard.Tab())
	assert.Equal(t, 1, f.resets)
}

func TestTransitionTableIsClosed(t *testing.T) {
	for from, events := range transitions {
		for ev, to := range events {
			_, ok := transitions[to]
			assert.True(t, ok, "%s --%s--> %s leads outside the table", from, ev, to)
		}
	}
	_, ok := next(StepCategory, evFoundModel)
	assert.False(t, ok)
}
