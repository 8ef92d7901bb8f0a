package set_canopy_quantity

import "github.com/bmc-canopy/BMC-BookingService/internal/domain"

// SetCanopyQuantityRequest HTTP request model
type SetCanopyQuantityRequest struct {
	CanopyID int64   `json:"canopyId"`
	SizeName *string `json:"sizeName,omitempty"`
	Quantity int     `json:"quantity"`
}

// ToCanopyRef собирает составной ключ выбора из запроса
func (r *SetCanopyQuantityRequest) ToCanopyRef() domain.CanopyRef {
	ref := domain.CanopyRef{CanopyID: r.CanopyID}
	if r.SizeName != nil {
		ref.SizeName = *r.SizeName
	}
	return ref
}
