package navigate_wizard

const (
	DirectionNext = "next"
	DirectionBack = "back"
)

// NavigateRequest HTTP request model
type NavigateRequest struct {
	Direction string `json:"direction"` // "next" | "back"
}
