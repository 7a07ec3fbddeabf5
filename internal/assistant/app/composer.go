package app

import "github.com/dwikikusuma/naija-assistant/internal/assistant/domain"

// Compose shapes an outcome for the transport layer. The intent is echoed as
// received; an empty label is reported as "unknown".
func Compose(rawIntent string, entities []domain.Entity, out domain.Outcome) domain.Response {
	if rawIntent == "" {
		rawIntent = domain.IntentUnknown.String()
	}
	ents := make([]domain.Entity, len(entities))
	copy(ents, entities)

	var nav *domain.Navigation
	if out.Navigation != nil {
		n := *out.Navigation
		nav = &n
	}
	return domain.Response{
		Message:    out.Message,
		Intent:     rawIntent,
		Entities:   ents,
		Navigation: nav,
	}
}
