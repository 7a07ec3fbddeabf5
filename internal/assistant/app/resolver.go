package app

import "github.com/dwikikusuma/naija-assistant/internal/assistant/domain"

// Resolve plans the action for a classified message. It performs no I/O.
func Resolve(rawIntent string, entities []domain.Entity) domain.Action {
	product, hasProduct := Select(entities, domain.LabelProduct)

	switch domain.ParseIntent(rawIntent) {
	case domain.IntentGreeting:
		return domain.Greet{}

	case domain.IntentAddToCart:
		store, hasStore := Select(entities, domain.LabelStore)
		if !hasProduct || !hasStore {
			return domain.AskClarify{Operation: domain.OpAdd, Needs: []string{domain.LabelProduct, domain.LabelStore}}
		}
		return domain.AddToCart{ProductName: product.Text, StoreName: store.Text}

	case domain.IntentRemoveFromCart:
		if !hasProduct {
			return domain.AskClarify{Operation: domain.OpRemove, Needs: []string{domain.LabelProduct}}
		}
		return domain.RemoveFromCart{ProductName: product.Text}

	case domain.IntentSearchProduct:
		if !hasProduct {
			return domain.AskClarify{Operation: domain.OpSearch, Needs: []string{domain.LabelProduct}}
		}
		return domain.Search{ProductName: product.Text}

	case domain.IntentViewCart:
		return domain.ViewCart{}
	}

	return domain.Decline{RawIntent: rawIntent}
}
