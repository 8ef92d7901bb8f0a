package catalog

import "errors"

var (
	// ErrItemNotFound возвращается, когда элемент каталога не найден
	ErrItemNotFound = errors.New("catalog.repository: item not found")

	// ErrSortColumnMissing возвращается, когда колонка sort_order
	// отсутствует в таблице; вызывающий повторяет выборку без сортировки
	ErrSortColumnMissing = errors.New("catalog.repository: sort_order column missing")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")

	// ErrEncodeJSON возвращается при ошибке сериализации JSONB полей
	ErrEncodeJSON = errors.New("catalog.repository: failed to encode json field")
)
