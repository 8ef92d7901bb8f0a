package domain

// Фиксированные ставки расчета стоимости
const (
	// SSTRate ставка налога SST (6%), не конфигурируется
	SSTRate = 0.06

	// DeliveryFeeAmount фиксированная стоимость доставки в RM
	DeliveryFeeAmount = 100.0

	// DepositRate доля депозита от итоговой суммы (50%)
	DepositRate = 0.5
)

// TotalSteps количество шагов мастера бронирования в обоих режимах
const TotalSteps = 4

// CanopyRefSeparator разделитель составного ключа канопи в строковой форме
// Внутри ядра составной ключ — структура CanopyRef; строковая форма
// существует только на границе JSON и в снимке selected_items
const CanopyRefSeparator = "_"

// DefaultColors встроенная палитра цветов канопи
// Первый элемент — цвет по умолчанию
var DefaultColors = []Color{
	{Name: "Putih", Hex: "#FFFFFF"},
	{Name: "Merah", Hex: "#DC2626"},
	{Name: "Biru", Hex: "#2563EB"},
	{Name: "Hijau", Hex: "#059669"},
	{Name: "Kuning", Hex: "#FACC15"},
	{Name: "Oren", Hex: "#F97316"},
}
