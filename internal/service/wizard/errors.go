package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("wizard service: session not found")

	// ErrInvalidMode возвращается при неизвестном режиме бронирования
	ErrInvalidMode = errors.New("wizard service: invalid booking mode")

	// ErrCanopyNotFound возвращается, когда канопи нет в каталоге
	ErrCanopyNotFound = errors.New("wizard service: canopy not found")

	// ErrSizeNotFound возвращается, когда у канопи нет размера с таким именем
	ErrSizeNotFound = errors.New("wizard service: canopy size not found")

	// ErrPackageNotFound возвращается, когда пакета нет в каталоге
	ErrPackageNotFound = errors.New("wizard service: package not found")

	// ErrColorNotFound возвращается, когда цвета нет в палитре
	ErrColorNotFound = errors.New("wizard service: color not found")

	// ErrAccessoryNotFound возвращается, когда аксессуара нет в каталоге
	ErrAccessoryNotFound = errors.New("wizard service: accessory not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard service: internal error")
)
