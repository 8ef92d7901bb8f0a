package handlers

import (
	"strconv"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	"github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"
)

// WizardStateResponse HTTP-представление состояния сессии мастера
// Отдается всеми операциями мастера, чтобы клиент всегда имел
// актуальное состояние и расчет после любой мутации
type WizardStateResponse struct {
	SessionID   string                 `json:"sessionId"`
	Mode        string                 `json:"mode"`
	CurrentStep int                    `json:"currentStep"`
	TotalSteps  int                    `json:"totalSteps"`
	Steps       []string               `json:"steps"`
	Canopies    map[string]int         `json:"canopies"`
	Package     *SelectedPackage       `json:"package"`
	Color       domain.Color           `json:"color"`
	Accessories map[string]int         `json:"accessories"`
	Details     BookingDetailsResponse `json:"details"`
	Financials  FinancialsResponse     `json:"financials"`
}

// SelectedPackage краткое представление выбранного пакета
type SelectedPackage struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BookingDetailsResponse данные клиента в ответе мастера
type BookingDetailsResponse struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	EventDate       string `json:"eventDate"`
	EventTime       string `json:"eventTime"`
	GuestCount      string `json:"guestCount"`
	Location        string `json:"location"`
	SpecialRequests string `json:"specialRequests"`
}

// FinancialsResponse расчет стоимости текущего выбора
type FinancialsResponse struct {
	Subtotal    float64 `json:"subtotal"`
	SST         float64 `json:"sst"`
	DeliveryFee float64 `json:"deliveryFee"`
	GrandTotal  float64 `json:"grandTotal"`
	Deposit     float64 `json:"deposit"`
}

// FromWizardView конвертирует снимок сессии в HTTP-представление
func FromWizardView(view *wizard.View) *WizardStateResponse {
	state := view.State

	canopies := make(map[string]int, len(state.Canopies))
	for ref, qty := range state.Canopies {
		canopies[ref.String()] = qty
	}

	accessories := make(map[string]int, len(state.Accessories))
	for id, qty := range state.Accessories {
		accessories[strconv.FormatInt(id, 10)] = qty
	}

	var pkg *SelectedPackage
	if state.Package != nil {
		pkg = &SelectedPackage{
			ID:    state.Package.ID,
			Name:  state.Package.Name,
			Price: state.Package.Price,
		}
	}

	return &WizardStateResponse{
		SessionID:   view.SessionID,
		Mode:        string(state.Mode),
		CurrentStep: state.CurrentStep,
		TotalSteps:  domain.TotalSteps,
		Steps:       view.Steps,
		Canopies:    canopies,
		Package:     pkg,
		Color:       state.Color,
		Accessories: accessories,
		Details: BookingDetailsResponse{
			FullName:        state.Details.FullName,
			Email:           state.Details.Email,
			Phone:           state.Details.Phone,
			EventDate:       state.Details.EventDate,
			EventTime:       state.Details.EventTime,
			GuestCount:      state.Details.GuestCount,
			Location:        state.Details.Location,
			SpecialRequests: state.Details.SpecialRequests,
		},
		Financials: FromFinancials(view.Financials),
	}
}

// FromFinancials конвертирует расчет стоимости в HTTP-представление
func FromFinancials(f domain.Financials) FinancialsResponse {
	return FinancialsResponse{
		Subtotal:    f.Subtotal,
		SST:         f.SST,
		DeliveryFee: f.DeliveryFee,
		GrandTotal:  f.GrandTotal,
		Deposit:     f.Deposit,
	}
}
