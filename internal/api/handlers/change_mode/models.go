package change_mode

// ChangeModeRequest HTTP request model
type ChangeModeRequest struct {
	Mode string `json:"mode"` // "Ala Carte" | "Package"
}
