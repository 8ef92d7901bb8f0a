package complete_booking

import "errors"

var (
	// ErrSessionNotFound сессия мастера не найдена или истекла
	ErrSessionNotFound = errors.New("wizard session not found")
	// ErrNoSelection в режиме Ala Carte не выбрано ни одной канопи
	ErrNoSelection = errors.New("no canopy selected")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
