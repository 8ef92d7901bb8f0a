package save_catalog_item

import "github.com/bmc-canopy/BMC-BookingService/internal/domain"

// SaveItemRequest HTTP request model
// Общая форма для всех коллекций: Sizes используется только канопи,
// Items только пакетами, Category только аксессуарами
type SaveItemRequest struct {
	Name        string              `json:"name"`
	Description *string             `json:"description,omitempty"`
	Price       float64             `json:"price"`
	ImageURL    *string             `json:"imageUrl,omitempty"`
	Sizes       []domain.CanopySize `json:"sizes,omitempty"`
	Items       []string            `json:"items,omitempty"`
	Category    string              `json:"category,omitempty"`
}

// ToCanopy конвертирует запрос в доменную модель канопи
// id нулевой для создания, иначе берется из пути
func (r *SaveItemRequest) ToCanopy(id int64) *domain.Canopy {
	return &domain.Canopy{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Sizes:       r.Sizes,
	}
}

// ToPackage конвертирует запрос в доменную модель пакета
func (r *SaveItemRequest) ToPackage(id int64) *domain.Package {
	return &domain.Package{
		ID:          id,
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Items:       r.Items,
	}
}

// ToAccessory конвертирует запрос в доменную модель аксессуара
func (r *SaveItemRequest) ToAccessory(id int64) *domain.Accessory {
	return &domain.Accessory{
		ID:       id,
		Name:     r.Name,
		Price:    r.Price,
		ImageURL: r.ImageURL,
		Category: r.Category,
	}
}

// SavedItemResponse HTTP response model
type SavedItemResponse struct {
	ID int64 `json:"id"`
}
