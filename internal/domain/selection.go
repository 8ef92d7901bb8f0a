package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BookingMode режим бронирования
type BookingMode string

const (
	ModeAlaCarte BookingMode = "Ala Carte"
	ModePackage  BookingMode = "Package"
)

// IsValid возвращает true для известного режима бронирования
func (m BookingMode) IsValid() bool {
	return m == ModeAlaCarte || m == ModePackage
}

// CanopyRef составной ключ выбора канопи: id канопи и опциональное имя размера
// Явная структура вместо строки "id_размер" исключает неоднозначность,
// когда имя размера само содержит разделитель
type CanopyRef struct {
	CanopyID int64
	SizeName string // пустая строка = канопи без размера
}

// String возвращает строковую форму ключа для JSON границы и снимка заказа
func (r CanopyRef) String() string {
	if r.SizeName == "" {
		return strconv.FormatInt(r.CanopyID, 10)
	}
	return strconv.FormatInt(r.CanopyID, 10) + CanopyRefSeparator + r.SizeName
}

// ParseCanopyRef разбирает строковую форму составного ключа
// Разделение идет по первому разделителю: всё после него — имя размера
func ParseCanopyRef(s string) (CanopyRef, error) {
	idPart, sizePart, _ := strings.Cut(s, CanopyRefSeparator)

	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return CanopyRef{}, fmt.Errorf("invalid canopy ref %q: %v", s, err)
	}

	return CanopyRef{CanopyID: id, SizeName: sizePart}, nil
}

// NewCanopyRef строит ключ выбора для канопи
// Если размер передан — используется он; если канопи имеет размеры,
// но размер не передан — первый размер; иначе ключ без размера
func NewCanopyRef(canopy *Canopy, size *CanopySize) CanopyRef {
	switch {
	case size != nil:
		return CanopyRef{CanopyID: canopy.ID, SizeName: size.Name}
	case canopy.HasSizes():
		return CanopyRef{CanopyID: canopy.ID, SizeName: canopy.Sizes[0].Name}
	default:
		return CanopyRef{CanopyID: canopy.ID}
	}
}

// BookingDetails данные клиента, заполняемые на последнем шаге
// Все поля опциональны на уровне модели; валидация — при завершении брони
type BookingDetails struct {
	FullName        string
	Email           string
	Phone           string
	EventDate       string
	EventTime       string
	GuestCount      string
	Location        string
	SpecialRequests string
}

// SelectionState состояние выбора одной сессии мастера бронирования
// Мутируется только через именованные переходы ниже
type SelectionState struct {
	Mode        BookingMode
	CurrentStep int
	Canopies    map[CanopyRef]int
	Package     *Package
	Color       Color
	Accessories map[int64]int
	Details     BookingDetails
}

// NewSelectionState создает пустое состояние: режим Ala Carte, шаг 1,
// цвет по умолчанию из палитры
func NewSelectionState(defaultColor Color) *SelectionState {
	return &SelectionState{
		Mode:        ModeAlaCarte,
		CurrentStep: 1,
		Canopies:    make(map[CanopyRef]int),
		Accessories: make(map[int64]int),
		Color:       defaultColor,
	}
}

// Clone возвращает глубокую копию состояния
// Используется, когда состояние читается вне блокировки хранилища сессий
func (s *SelectionState) Clone() *SelectionState {
	clone := *s
	clone.Canopies = make(map[CanopyRef]int, len(s.Canopies))
	for ref, qty := range s.Canopies {
		clone.Canopies[ref] = qty
	}
	clone.Accessories = make(map[int64]int, len(s.Accessories))
	for id, qty := range s.Accessories {
		clone.Accessories[id] = qty
	}
	return &clone
}

// Reset сбрасывает состояние к пустым значениям
func (s *SelectionState) Reset(defaultColor Color) {
	s.Mode = ModeAlaCarte
	s.CurrentStep = 1
	s.Canopies = make(map[CanopyRef]int)
	s.Package = nil
	s.Color = defaultColor
	s.Accessories = make(map[int64]int)
	s.Details = BookingDetails{}
}

// SetCanopyQuantity устанавливает количество для ключа, не трогая остальные
// Отрицательные значения приводятся к нулю; нулевые записи остаются в map,
// читатели фильтруют по quantity > 0
func (s *SelectionState) SetCanopyQuantity(ref CanopyRef, qty int) {
	if qty < 0 {
		qty = 0
	}
	s.Canopies[ref] = qty
}

// SetAccessoryQuantity устанавливает количество аксессуара
func (s *SelectionState) SetAccessoryQuantity(id int64, qty int) {
	if qty < 0 {
		qty = 0
	}
	s.Accessories[id] = qty
}

// SelectSingleCanopy заменяет весь выбор канопи одной записью с количеством 1
// и переходит к следующему шагу. Используется в одиночном выборе Ala Carte
func (s *SelectionState) SelectSingleCanopy(canopy *Canopy, size *CanopySize) {
	s.Canopies = map[CanopyRef]int{NewCanopyRef(canopy, size): 1}
	s.Next()
}

// SelectColor устанавливает цвет и переходит к следующему шагу
func (s *SelectionState) SelectColor(color Color) {
	s.Color = color
	s.Next()
}

// SetDetails обновляет данные клиента
func (s *SelectionState) SetDetails(d BookingDetails) {
	s.Details = d
}

// HasCanopySelection возвращает true, если выбрана хотя бы одна канопи
func (s *SelectionState) HasCanopySelection() bool {
	for _, qty := range s.Canopies {
		if qty > 0 {
			return true
		}
	}
	return false
}

// sizeTokenRe токен размера в скобках внутри строки состава пакета,
// например "10x10 Canopy (Large)"
var sizeTokenRe = regexp.MustCompile(`\((.*?)\)`)

// SelectPackage устанавливает пакет, автоматически подбирает канопи
// по тексту состава пакета и переходит к следующему шагу
//
// Автоподбор нужен только чтобы расчёт и сводка, ключуемые выбором канопи,
// оставались заполненными и в режиме Package:
//  1. первая строка состава, содержащая "canopy" (без учета регистра);
//  2. первая канопи каталога, чьё имя содержится в этой строке;
//  3. размер — токен в скобках, сопоставленный с размерами канопи
//     с учетом регистра, по умолчанию первый размер;
//  4. если канопи по имени не нашлась — первая канопи каталога;
//  5. пустой каталог — выбор канопи не делается.
func (s *SelectionState) SelectPackage(pkg *Package, canopies []Canopy) {
	s.Package = pkg

	if ref, ok := inferPackageCanopy(pkg, canopies); ok {
		s.Canopies = map[CanopyRef]int{ref: 1}
	}

	s.Next()
}

func inferPackageCanopy(pkg *Package, canopies []Canopy) (CanopyRef, bool) {
	var canopyItem string
	for _, item := range pkg.Items {
		if strings.Contains(strings.ToLower(item), "canopy") {
			canopyItem = item
			break
		}
	}

	if canopyItem != "" {
		for i := range canopies {
			c := &canopies[i]
			if !strings.Contains(strings.ToLower(canopyItem), strings.ToLower(c.Name)) {
				continue
			}

			if !c.HasSizes() {
				return CanopyRef{CanopyID: c.ID}, true
			}

			sizeName := c.Sizes[0].Name
			if m := sizeTokenRe.FindStringSubmatch(canopyItem); m != nil {
				if size, ok := c.SizeByName(m[1]); ok {
					sizeName = size.Name
				}
			}
			return CanopyRef{CanopyID: c.ID, SizeName: sizeName}, true
		}
	}

	// Канопи по имени не нашлась — берем первую из каталога
	if len(canopies) > 0 {
		return NewCanopyRef(&canopies[0], nil), true
	}

	return CanopyRef{}, false
}
