package domain

// Action is the operation planned for one request. The set of variants is
// closed; Execute switches over it exhaustively.
type Action interface {
	Name() string
	action()
}

type Greet struct{}

type AddToCart struct {
	ProductName string
	StoreName   string
}

type RemoveFromCart struct {
	ProductName string
}

// Search carries only a name; the fuzzy fallback runs without filters.
type Search struct {
	ProductName string
}

type ViewCart struct{}

// AskClarify is planned when a mutating or search intent arrives without the
// entities it needs. It never touches the store.
type AskClarify struct {
	Operation string
	Needs     []string
}

type Decline struct {
	RawIntent string
}

const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpSearch = "search"
)

func (Greet) Name() string          { return "greet" }
func (AddToCart) Name() string      { return "add_to_cart" }
func (RemoveFromCart) Name() string { return "remove_from_cart" }
func (Search) Name() string         { return "search" }
func (ViewCart) Name() string       { return "view_cart" }
func (AskClarify) Name() string     { return "ask_clarify" }
func (Decline) Name() string        { return "decline" }

func (Greet) action()          {}
func (AddToCart) action()      {}
func (RemoveFromCart) action() {}
func (Search) action()         {}
func (ViewCart) action()       {}
func (AskClarify) action()     {}
func (Decline) action()        {}
