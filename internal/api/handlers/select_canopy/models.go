package select_canopy

// SelectCanopyRequest HTTP request model
type SelectCanopyRequest struct {
	CanopyID int64   `json:"canopyId"`
	SizeName *string `json:"sizeName,omitempty"`
}
