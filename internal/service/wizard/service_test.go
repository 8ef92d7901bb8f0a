package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	"github.com/bmc-canopy/BMC-BookingService/pkg/ptr"
)

type fakeCatalog struct {
	snapshot *domain.CatalogSnapshot
}

func (f *fakeCatalog) Snapshot() *domain.CatalogSnapshot { return f.snapshot }

type noopLogger struct{}

func (noopLogger) Info(format string, args ...any)  {}
func (noopLogger) Warn(format string, args ...any)  {}
func (noopLogger) Error(format string, args ...any) {}

func wizardSnapshot() *domain.CatalogSnapshot {
	return &domain.CatalogSnapshot{
		Canopies: []domain.Canopy{
			{ID: 1, Name: "Arabian Canopy", Price: 200},
			{ID: 2, Name: "10x10 Canopy", Sizes: []domain.CanopySize{
				{Name: "Medium", Price: 200},
				{Name: "Large", Price: 250},
			}},
		},
		Packages: []domain.Package{
			{ID: 9, Name: "Pakej Perkahwinan", Price: 1500, Items: []string{"10x10 Canopy (Large)"}},
		},
		Accessories: []domain.Accessory{
			{ID: 5, Name: "Kipas", Price: 30},
		},
		Colors: domain.DefaultColors,
	}
}

func newTestService() *Service {
	return NewService(&fakeCatalog{snapshot: wizardSnapshot()}, time.Hour, noopLogger{})
}

func TestStartSession_InitialState(t *testing.T) {
	svc := newTestService()

	view, err := svc.StartSession()
	require.NoError(t, err)

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, domain.ModeAlaCarte, view.State.Mode)
	assert.Equal(t, 1, view.State.CurrentStep)
	assert.Equal(t, domain.DefaultColors[0], view.State.Color)
	assert.Equal(t, []string{"Canopy", "Color", "Accessories", "Details"}, view.Steps)
	assert.InDelta(t, 100.0, view.Financials.GrandTotal, 1e-9) // только доставка
}

func TestStartSession_IDsAreUnique(t *testing.T) {
	svc := newTestService()

	first, err := svc.StartSession()
	require.NoError(t, err)
	second, err := svc.StartSession()
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestGet_UnknownSession(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGet_ExpiredSession(t *testing.T) {
	svc := NewService(&fakeCatalog{snapshot: wizardSnapshot()}, time.Nanosecond, noopLogger{})

	view, err := svc.StartSession()
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = svc.Get(view.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestChangeMode_InvalidMode(t *testing.T) {
	svc := newTestService()
	view, err := svc.StartSession()
	require.NoError(t, err)

	_, err = svc.ChangeMode(view.SessionID, domain.BookingMode("Buffet"))
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestSetCanopyQuantity_ValidatesCatalog(t *testing.T) {
	svc := newTestService()
	view, err := svc.StartSession()
	require.NoError(t, err)

	_, err = svc.SetCanopyQuantity(view.SessionID, domain.CanopyRef{CanopyID: 99}, 1)
	assert.ErrorIs(t, err, ErrCanopyNotFound)

	updated, err := svc.SetCanopyQuantity(view.SessionID, domain.CanopyRef{CanopyID: 2, SizeName: "Large"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.State.Canopies[domain.CanopyRef{CanopyID: 2, SizeName: "Large"}])
	assert.InDelta(t, 500.0, updated.Financials.Subtotal, 1e-9)
}

func TestSelectCanopy_SizeValidation(t *testing.T) {
	svc := newTestService()
	view, err := svc.StartSession()
	require.NoError(t, err)

	_, err = svc.SelectCanopy(view.SessionID, 2, ptr.Ptr("Gigantic"))
	assert.ErrorIs(t, err, ErrSizeNotFound)

	updated, err := svc.SelectCanopy(view.SessionID, 2, ptr.Ptr("Large"))
	require.NoError(t, err)
	assert.Equal(t, 1, updated.State.Canopies[domain.CanopyRef{CanopyID: 2, SizeName: "Large"}])
	assert.Equal(t, 2, updated.State.CurrentStep)
}

func TestSelectPackage_InfersCanopyAndAdvances(t *testing.T) {
	svc := newTestService()
	view, err := svc.StartSession()
	require.NoError(t, err)

	_, err = svc.ChangeMode(view.SessionID, domain.ModePackage)
	require.NoError(t, err)

	_, err = svc.SelectPackage(view.SessionID, 404)
	assert.ErrorIs(t, err, ErrPackageNotFound)

	updated, err := svc.SelectPackage(view.SessionID, 9)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.State.Canopies[domain.CanopyRef{CanopyID: 2, SizeName: "Large"}])
	assert.Equal(t, 2, updated.State.CurrentStep)
	assert.InDelta(t, 1500.0, updated.Financials.Subtotal, 1e-9)
}

func TestSelectColor_ValidatesPalette(t *testing.T) {
	svc := newTestService()
	view, err := svc.StartSession()
	require.NoError(t, err)

	_, err = svc.SelectColor(view.SessionID, "Ungu")
	assert.ErrorIs(t, err, ErrColorNotFound)

	updated, err := svc.SelectColor(view.SessionID, "Merah")
	require.NoError(t, err)
	assert.Equal(t, "Merah", updated.State.Color.Name)
}

func TestSetAccessoryQuantity_ValidatesCatalog(t *testing.T) {
	svc := newTestService()
	view, err := svc.StartSession()
	require.NoError(t, err)

	_, err = svc.SetAccessoryQuantity(view.SessionID, 99, 1)
	assert.ErrorIs(t, err, ErrAccessoryNotFound)

	updated, err := svc.SetAccessoryQuantity(view.SessionID, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.State.Accessories[5])
}

func TestView_StateIsACopy(t *testing.T) {
	svc := newTestService()
	view, err := svc.StartSession()
	require.NoError(t, err)

	_, err = svc.SetCanopyQuantity(view.SessionID, domain.CanopyRef{CanopyID: 1}, 2)
	require.NoError(t, err)

	got, err := svc.Get(view.SessionID)
	require.NoError(t, err)

	// Мутация выданного состояния не влияет на сессию
	got.State.Canopies[domain.CanopyRef{CanopyID: 1}] = 9

	again, err := svc.Get(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.State.Canopies[domain.CanopyRef{CanopyID: 1}])
}

func TestReset_ClearsState(t *testing.T) {
	svc := newTestService()
	view, err := svc.StartSession()
	require.NoError(t, err)

	_, err = svc.SetCanopyQuantity(view.SessionID, domain.CanopyRef{CanopyID: 1}, 2)
	require.NoError(t, err)
	_, err = svc.SetDetails(view.SessionID, domain.BookingDetails{FullName: "Aminah"})
	require.NoError(t, err)

	require.NoError(t, svc.Reset(view.SessionID))

	got, err := svc.Get(view.SessionID)
	require.NoError(t, err)
	assert.Empty(t, got.State.Canopies)
	assert.Equal(t, domain.BookingDetails{}, got.State.Details)
	assert.Equal(t, 1, got.State.CurrentStep)
}
