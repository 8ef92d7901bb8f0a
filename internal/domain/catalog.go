package domain

// CanopySize вариант размера канопи с собственной ценой
type CanopySize struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Canopy канопи из каталога
// Если Sizes не пуст, базовая цена Price для расчета строк не используется
type Canopy struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	ImageURL    *string
	Sizes       []CanopySize
	SortOrder   int
}

// HasSizes возвращает true, если канопи имеет варианты размеров
func (c *Canopy) HasSizes() bool {
	return len(c.Sizes) > 0
}

// SizeByName ищет размер по точному совпадению имени
func (c *Canopy) SizeByName(name string) (CanopySize, bool) {
	for _, s := range c.Sizes {
		if s.Name == name {
			return s, true
		}
	}
	return CanopySize{}, false
}

// DefaultSize возвращает первый размер канопи
func (c *Canopy) DefaultSize() (CanopySize, bool) {
	if len(c.Sizes) == 0 {
		return CanopySize{}, false
	}
	return c.Sizes[0], true
}

// Package фиксированный пакет предложений
// Items содержит человекочитаемые строки состава; одна из них обычно
// упоминает канопи по имени — по ней работает автоподбор (см. selection.go)
type Package struct {
	ID          int64
	Name        string
	Price       float64
	Description *string
	Items       []string
	SortOrder   int
}

// Accessory аксессуар из каталога
type Accessory struct {
	ID        int64
	Name      string
	Price     float64
	ImageURL  *string
	Category  string
	SortOrder int
}

// Color цвет канопи из фиксированной палитры
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// CollectionName имя коллекции каталога
type CollectionName string

const (
	CollectionCanopies    CollectionName = "canopies"
	CollectionPackages    CollectionName = "packages"
	CollectionAccessories CollectionName = "accessories"
)

// IsValid возвращает true для известной коллекции каталога
func (c CollectionName) IsValid() bool {
	return c == CollectionCanopies || c == CollectionPackages || c == CollectionAccessories
}

// CatalogSnapshot неизменяемый снимок каталога на момент загрузки
// Палитра цветов встроенная и не загружается из внешнего хранилища
type CatalogSnapshot struct {
	Canopies    []Canopy
	Packages    []Package
	Accessories []Accessory
	Colors      []Color
}

// CanopyByID ищет канопи по id
func (s *CatalogSnapshot) CanopyByID(id int64) (*Canopy, bool) {
	for i := range s.Canopies {
		if s.Canopies[i].ID == id {
			return &s.Canopies[i], true
		}
	}
	return nil, false
}

// PackageByID ищет пакет по id
func (s *CatalogSnapshot) PackageByID(id int64) (*Package, bool) {
	for i := range s.Packages {
		if s.Packages[i].ID == id {
			return &s.Packages[i], true
		}
	}
	return nil, false
}

// AccessoryByID ищет аксессуар по id
func (s *CatalogSnapshot) AccessoryByID(id int64) (*Accessory, bool) {
	for i := range s.Accessories {
		if s.Accessories[i].ID == id {
			return &s.Accessories[i], true
		}
	}
	return nil, false
}

// ColorByName ищет цвет палитры по имени
func (s *CatalogSnapshot) ColorByName(name string) (Color, bool) {
	for _, c := range s.Colors {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}

// DefaultColor возвращает цвет по умолчанию — первый в палитре
func (s *CatalogSnapshot) DefaultColor() Color {
	if len(s.Colors) == 0 {
		return Color{}
	}
	return s.Colors[0]
}
