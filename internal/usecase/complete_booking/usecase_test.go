package complete_booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	"github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"
)

type stubWizard struct {
	state    *domain.SelectionState
	stateErr error
	resetIDs []string
}

func (s *stubWizard) State(sessionID string) (*domain.SelectionState, error) {
	if s.stateErr != nil {
		return nil, s.stateErr
	}
	return s.state, nil
}

func (s *stubWizard) Reset(sessionID string) error {
	s.resetIDs = append(s.resetIDs, sessionID)
	return nil
}

type stubCatalog struct {
	snapshot *domain.CatalogSnapshot
}

func (s *stubCatalog) Snapshot() *domain.CatalogSnapshot { return s.snapshot }

type stubRepo struct {
	created *domain.Booking
	err     error
}

func (s *stubRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	booking.ID = 42
	s.created = booking
	return booking, nil
}

type stubLinks struct {
	lastText string
}

func (s *stubLinks) BookingLink(text string) string {
	s.lastText = text
	return "https://wa.me/60166327901?text=" + text
}

type noopLogger struct{}

func (noopLogger) Info(format string, args ...any)  {}
func (noopLogger) Warn(format string, args ...any)  {}
func (noopLogger) Error(format string, args ...any) {}

func fullSnapshot() *domain.CatalogSnapshot {
	return &domain.CatalogSnapshot{
		Canopies: []domain.Canopy{
			{ID: 1, Name: "Arabian Canopy", Price: 200},
			{ID: 2, Name: "10x10 Canopy", Sizes: []domain.CanopySize{
				{Name: "Medium", Price: 200},
				{Name: "Large", Price: 250},
			}},
		},
		Accessories: []domain.Accessory{
			{ID: 5, Name: "Kipas", Price: 30},
		},
		Colors: domain.DefaultColors,
	}
}

func selectionState() *domain.SelectionState {
	state := domain.NewSelectionState(domain.DefaultColors[0])
	state.SetCanopyQuantity(domain.CanopyRef{CanopyID: 2, SizeName: "Large"}, 2)
	state.SetAccessoryQuantity(5, 1)
	state.SetDetails(domain.BookingDetails{
		FullName:  "Aminah",
		Phone:     "0123456789",
		EventDate: "2026-09-12",
	})
	return state
}

func TestExecute_PersistsBookingAndBuildsLink(t *testing.T) {
	wizardStub := &stubWizard{state: selectionState()}
	repo := &stubRepo{}
	links := &stubLinks{}

	uc := New(wizardStub, &stubCatalog{snapshot: fullSnapshot()}, repo, links, noopLogger{})

	resp, err := uc.Execute(context.Background(), Request{SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, "#42", resp.BookingID)
	assert.Equal(t, noticeBookingSaved, resp.Notice)
	assert.Contains(t, resp.WhatsAppURL, "wa.me")

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
	assert.Equal(t, "Aminah", repo.created.FullName)
	// 2 x 250 + 30 = 530; SST 31.80; доставка 100 → 661.80; депозит 330.90
	assert.InDelta(t, 661.80, repo.created.TotalPrice, 1e-9)
	assert.InDelta(t, 330.90, repo.created.DepositAmount, 1e-9)

	assert.Equal(t, []string{"s1"}, wizardStub.resetIDs)
}

func TestExecute_PersistFailureStillReturnsLink(t *testing.T) {
	wizardStub := &stubWizard{state: selectionState()}
	repo := &stubRepo{err: errors.New("db down")}
	links := &stubLinks{}

	uc := New(wizardStub, &stubCatalog{snapshot: fullSnapshot()}, repo, links, noopLogger{})

	resp, err := uc.Execute(context.Background(), Request{SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, placeholderBookingID, resp.BookingID)
	assert.Contains(t, links.lastText, "(BARU)")
	assert.Equal(t, []string{"s1"}, wizardStub.resetIDs)
}

func TestExecute_AlaCarteWithoutCanopyRejected(t *testing.T) {
	state := domain.NewSelectionState(domain.DefaultColors[0])
	wizardStub := &stubWizard{state: state}
	repo := &stubRepo{}

	uc := New(wizardStub, &stubCatalog{snapshot: fullSnapshot()}, repo, &stubLinks{}, noopLogger{})

	_, err := uc.Execute(context.Background(), Request{SessionID: "s1"})
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Nil(t, repo.created)
	assert.Empty(t, wizardStub.resetIDs)
}

func TestExecute_SessionNotFound(t *testing.T) {
	wizardStub := &stubWizard{stateErr: wizard.ErrSessionNotFound}

	uc := New(wizardStub, &stubCatalog{snapshot: fullSnapshot()}, &stubRepo{}, &stubLinks{}, noopLogger{})

	_, err := uc.Execute(context.Background(), Request{SessionID: "missing"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestComposeMessage_AlaCarte(t *testing.T) {
	state := selectionState()
	msg := composeMessage("#42", state, fullSnapshot(), domain.CalculateFinancials(state, fullSnapshot()))

	assert.True(t, strings.HasPrefix(msg, "Salam BMC Canopy, saya ingin membuat tempahan (#42)."))
	assert.Contains(t, msg, "*MAKLUMAT PELANGGAN*")
	assert.Contains(t, msg, "Nama: Aminah")
	assert.Contains(t, msg, "Masa: -")
	assert.Contains(t, msg, "- 10x10 Canopy (Large) (x2)")
	assert.Contains(t, msg, "- Warna Kanopi: Putih")
	assert.Contains(t, msg, "*Tambahan (Accessories):*")
	assert.Contains(t, msg, "- Kipas (x1)")
	assert.Contains(t, msg, "Jumlah Besar: RM 661.80")
	assert.Contains(t, msg, "Deposit (50%): RM 330.90")
	assert.True(t, strings.HasSuffix(msg, "Mohon pengesahan ketersediaan. Terima kasih."))
	assert.NotContains(t, msg, "*Catatan*")
}

func TestComposeMessage_ListsSizesMissingFromCatalog(t *testing.T) {
	state := domain.NewSelectionState(domain.DefaultColors[0])
	state.SetCanopyQuantity(domain.CanopyRef{CanopyID: 2, SizeName: "Gigantic"}, 3)

	msg := composeMessage("#42", state, fullSnapshot(), domain.CalculateFinancials(state, fullSnapshot()))

	assert.Contains(t, msg, "- 10x10 Canopy (Gigantic) (x3)")
}

func TestComposeMessage_PackageMode(t *testing.T) {
	snapshot := fullSnapshot()
	state := domain.NewSelectionState(domain.DefaultColors[0])
	state.ChangeMode(domain.ModePackage)
	state.SelectPackage(&domain.Package{ID: 9, Name: "Pakej Perkahwinan", Price: 1500}, snapshot.Canopies)
	state.SetDetails(domain.BookingDetails{SpecialRequests: "sediakan awal"})

	msg := composeMessage("BARU", state, snapshot, domain.CalculateFinancials(state, snapshot))

	assert.Contains(t, msg, "- Pakej: Pakej Perkahwinan")
	assert.NotContains(t, msg, "(x1)")
	assert.Contains(t, msg, "*Catatan*: sediakan awal")
}
