package complete_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	"github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"
)

// noticeBookingSaved сообщение клиенту после завершения брони
const noticeBookingSaved = "Tempahan disimpan! Anda akan dibawa ke WhatsApp untuk menghantar butiran tempahan."

// placeholderBookingID отображаемый номер брони, когда сохранение не удалось
const placeholderBookingID = "BARU"

// Usecase завершение брони: сохранение, ссылка WhatsApp, сброс сессии
type Usecase struct {
	wizard  WizardService
	catalog CatalogProvider
	repo    BookingRepository
	links   LinkBuilder
	logger  Logger
}

// New создает новый экземпляр usecase завершения брони
func New(wizardSvc WizardService, catalog CatalogProvider, repo BookingRepository, links LinkBuilder, logger Logger) *Usecase {
	return &Usecase{
		wizard:  wizardSvc,
		catalog: catalog,
		repo:    repo,
		links:   links,
		logger:  logger,
	}
}

// Execute завершает бронь по сессии мастера
// Сбой сохранения в БД не прерывает поток: клиент все равно получает
// ссылку WhatsApp, а номер брони заменяется заглушкой
func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	state, err := u.wizard.State(req.SessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: Execute - wizard.State: %v", ErrInternal, err)
	}

	if err := validateSelection(state); err != nil {
		return nil, err
	}

	snapshot := u.catalog.Snapshot()
	financials := domain.CalculateFinancials(state, snapshot)

	booking := &domain.Booking{
		FullName:        state.Details.FullName,
		Email:           state.Details.Email,
		Phone:           state.Details.Phone,
		EventDate:       state.Details.EventDate,
		EventTime:       state.Details.EventTime,
		GuestCount:      state.Details.GuestCount,
		Location:        state.Details.Location,
		SpecialRequests: state.Details.SpecialRequests,
		BookingMode:     state.Mode,
		SelectedItems:   domain.NewSelectionSnapshot(state),
		TotalPrice:      financials.GrandTotal,
		DepositAmount:   financials.Deposit,
		Status:          domain.StatusPending,
	}

	displayID := placeholderBookingID
	if saved, err := u.repo.Create(ctx, booking); err != nil {
		u.logger.Error("Execute: failed to persist booking: %v", err)
	} else {
		displayID = fmt.Sprintf("#%d", saved.ID)
	}

	message := composeMessage(displayID, state, snapshot, financials)
	link := u.links.BookingLink(message)

	if err := u.wizard.Reset(req.SessionID); err != nil {
		u.logger.Warn("Execute: failed to reset session %s: %v", req.SessionID, err)
	}

	u.logger.Info("Execute: booking %s completed for session %s", displayID, req.SessionID)

	return &Response{
		BookingID:   displayID,
		WhatsAppURL: link,
		Notice:      noticeBookingSaved,
		Financials:  financials,
	}, nil
}
