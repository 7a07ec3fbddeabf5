package domain

const (
	CartPath       = "/cart"
	ActionNavigate = "navigate"
)

type Navigation struct {
	Path   string `json:"path"`
	Action string `json:"action"`
}

// Outcome is the effect of executing one Action.
type Outcome struct {
	Message    string
	Navigation *Navigation
}

// Request carries the per-call context an Action is executed under.
type Request struct {
	UserID    string
	RawIntent string
	Entities  []Entity
}

// Response is the shape handed back to the transport layer.
type Response struct {
	Message    string      `json:"message"`
	Intent     string      `json:"intent"`
	Entities   []Entity    `json:"entities"`
	Navigation *Navigation `json:"navigation,omitempty"`
}
