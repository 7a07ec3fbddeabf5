package domain

// Intent is the closed set of requests the assistant acts on. Labels the
// NLU provider emits outside this set parse to IntentUnknown.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentGreeting
	IntentAddToCart
	IntentRemoveFromCart
	IntentSearchProduct
	IntentViewCart
)

var intentLabels = map[Intent]string{
	IntentUnknown:        "unknown",
	IntentGreeting:       "greeting",
	IntentAddToCart:      "addToCart",
	IntentRemoveFromCart: "removeFromCart",
	IntentSearchProduct:  "searchProduct",
	IntentViewCart:       "viewCart",
}

func (i Intent) String() string {
	if s, ok := intentLabels[i]; ok {
		return s
	}
	return intentLabels[IntentUnknown]
}

// ParseIntent matches the label exactly.
func ParseIntent(label string) Intent {
	for i, s := range intentLabels {
		if s == label {
			return i
		}
	}
	return IntentUnknown
}

// Intents lists the recognised intents in declaration order, IntentUnknown
// excluded.
func Intents() []Intent {
	return []Intent{IntentGreeting, IntentAddToCart, IntentRemoveFromCart, IntentSearchProduct, IntentViewCart}
}
