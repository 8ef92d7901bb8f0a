package catalog

import "errors"

var (
	// ErrItemNotFound возвращается, когда элемент каталога не найден
	ErrItemNotFound = errors.New("catalog service: item not found")

	// ErrInvalidCollection возвращается при неизвестном имени коллекции
	ErrInvalidCollection = errors.New("catalog service: invalid collection")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog service: invalid input data")

	// ErrLoadFailed возвращается, когда загрузка каталога не удалась
	// даже после повторной выборки без сортировки
	ErrLoadFailed = errors.New("catalog service: failed to load catalog")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog service: internal error")
)
