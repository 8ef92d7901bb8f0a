package get_catalog

import "github.com/bmc-canopy/BMC-BookingService/internal/domain"

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Canopies    []CanopyResponse    `json:"canopies"`
	Packages    []PackageResponse   `json:"packages"`
	Accessories []AccessoryResponse `json:"accessories"`
	Colors      []domain.Color      `json:"colors"`
}

type CanopyResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description,omitempty"`
	Price       float64             `json:"price"`
	ImageURL    *string             `json:"imageUrl,omitempty"`
	Sizes       []domain.CanopySize `json:"sizes,omitempty"`
	SortOrder   int                 `json:"sortOrder"`
}

type PackageResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description *string  `json:"description,omitempty"`
	Items       []string `json:"items"`
	SortOrder   int      `json:"sortOrder"`
}

type AccessoryResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Category  string  `json:"category,omitempty"`
	SortOrder int     `json:"sortOrder"`
}

// FromSnapshot конвертирует снимок каталога в HTTP response
func FromSnapshot(s *domain.CatalogSnapshot) *CatalogResponse {
	resp := &CatalogResponse{
		Canopies:    make([]CanopyResponse, 0, len(s.Canopies)),
		Packages:    make([]PackageResponse, 0, len(s.Packages)),
		Accessories: make([]AccessoryResponse, 0, len(s.Accessories)),
		Colors:      s.Colors,
	}

	for _, c := range s.Canopies {
		resp.Canopies = append(resp.Canopies, CanopyResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Price:       c.Price,
			ImageURL:    c.ImageURL,
			Sizes:       c.Sizes,
			SortOrder:   c.SortOrder,
		})
	}
	for _, p := range s.Packages {
		resp.Packages = append(resp.Packages, PackageResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Items:       p.Items,
			SortOrder:   p.SortOrder,
		})
	}
	for _, a := range s.Accessories {
		resp.Accessories = append(resp.Accessories, AccessoryResponse{
			ID:        a.ID,
			Name:      a.Name,
			Price:     a.Price,
			ImageURL:  a.ImageURL,
			Category:  a.Category,
			SortOrder: a.SortOrder,
		})
	}

	return resp
}
