package select_color

// SelectColorRequest HTTP request model
type SelectColorRequest struct {
	Name string `json:"name"`
}
