package app

import "github.com/dwikikusuma/naija-assistant/internal/assistant/domain"

// Select returns the first entity carrying label. Labels compare
// case-sensitively.
func Select(entities []domain.Entity, label string) (domain.Entity, bool) {
	for _, e := range entities {
		if e.Label == label {
			return e, true
		}
	}
	return domain.Entity{}, false
}
