package set_accessory_quantity

// SetAccessoryQuantityRequest HTTP request model
type SetAccessoryQuantityRequest struct {
	AccessoryID int64 `json:"accessoryId"`
	Quantity    int   `json:"quantity"`
}
