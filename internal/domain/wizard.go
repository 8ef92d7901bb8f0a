package domain

// Имена шагов мастера бронирования
var (
	stepsAlaCarte = []string{"Canopy", "Color", "Accessories", "Details"}
	stepsPackage  = []string{"Package", "Color", "Accessories", "Details"}
)

// ActiveSteps возвращает упорядоченный список шагов для режима
// Оба режима имеют ровно TotalSteps шагов
func ActiveSteps(mode BookingMode) []string {
	if mode == ModePackage {
		return stepsPackage
	}
	return stepsAlaCarte
}

// Next переходит к следующему шагу с ограничением на последнем
// Повторный вызов на последнем шаге не является ошибкой
func (s *SelectionState) Next() {
	if s.CurrentStep < TotalSteps {
		s.CurrentStep++
	}
}

// Back возвращается на предыдущий шаг с ограничением на первом
//
// В режиме Package на шаге 2 возврат всегда ведет на шаг 1 — правило
// привязано к режиму и шагу, а не к арифметике декремента
func (s *SelectionState) Back() {
	if s.Mode == ModePackage && s.CurrentStep == 2 {
		s.CurrentStep = 1
		return
	}
	if s.CurrentStep > 1 {
		s.CurrentStep--
	}
}

// ChangeMode переключает режим бронирования
// Сбрасывает выбор канопи, пакета и аксессуаров и возвращает на шаг 1.
// Аксессуары очищаются намеренно, хотя логически не зависят от режима —
// это политика полного сброса при смене режима
func (s *SelectionState) ChangeMode(mode BookingMode) {
	s.Mode = mode
	s.Canopies = make(map[CanopyRef]int)
	s.Package = nil
	s.Accessories = make(map[int64]int)
	s.CurrentStep = 1
}
