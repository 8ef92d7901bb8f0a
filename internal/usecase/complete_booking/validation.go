package complete_booking

import "github.com/bmc-canopy/BMC-BookingService/internal/domain"

// validateSelection проверяет состояние выбора перед завершением брони
// В режиме Ala Carte без единой канопи бронь не имеет смысла;
// режим Package пропускается как есть — пакет подобран мастером
func validateSelection(state *domain.SelectionState) error {
	if state.Mode == domain.ModeAlaCarte && !state.HasCanopySelection() {
		return ErrNoSelection
	}
	return nil
}
