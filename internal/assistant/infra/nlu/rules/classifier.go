// Package rules is a keyword NLU provider. It needs no model and is the
// default classifier.
package rules

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/dwikikusuma/naija-assistant/internal/assistant/domain"
)

var (
	greetingRe = regexp.MustCompile(`(?i)^(?:hi|hello|hey|hiya|good (?:morning|afternoon|evening))(?:\s+there)?(?:\s+\w+)?$`)
	removeRe   = regexp.MustCompile(`(?i)\b(?:remove|delete|take out|take off)\b`)
	addRe      = regexp.MustCompile(`(?i)\b(?:add|buy|purchase|put)\b`)
	cartRe     = regexp.MustCompile(`(?i)\b(?:cart|basket)\b`)
	searchRe   = regexp.MustCompile(`(?i)\b(?:search for|search|find|show me|looking for|look for|do you have|have you got)\b`)

	// cartPhraseRe drops "to my cart", "from the basket" and the like
	// before entities are read so they never become a product or a store.
	cartPhraseRe = regexp.MustCompile(`(?i)\s*\b(?:to|into|in|from|on|out of)\s+(?:my\s+|the\s+)?(?:cart|basket)\b`)
	storeRe      = regexp.MustCompile(`(?i)(?:^|\s+)from\s+(?:the\s+)?(.+)$`)
	fillerRe     = regexp.MustCompile(`(?i)^(?:(?:a|an|the|some|me|my|please|for|any)\s+)+`)
	trailRe      = regexp.MustCompile(`(?i)\s+(?:please|for me)$`)
)

type Classifier struct{}

func New() Classifier { return Classifier{} }

func (Classifier) Classify(ctx context.Context, text string) (domain.Classification, error) {
	if err := ctx.Err(); err != nil {
		return domain.Classification{}, fmt.Errorf("%w: %v", domain.ErrClassification, err)
	}

	text = strings.TrimRight(strings.TrimSpace(text), ".!?")
	intent, verb := classify(text)

	out := domain.Classification{Intent: intent.String(), Entities: []domain.Entity{}}
	switch intent {
	case domain.IntentAddToCart, domain.IntentRemoveFromCart, domain.IntentSearchProduct:
		out.Entities = extract(text, verb, intent != domain.IntentRemoveFromCart)
	}
	return out, nil
}

func classify(text string) (domain.Intent, *regexp.Regexp) {
	switch {
	case text == "":
		return domain.IntentUnknown, nil
	case greetingRe.MatchString(text):
		return domain.IntentGreeting, nil
	case removeRe.MatchString(text):
		return domain.IntentRemoveFromCart, removeRe
	case addRe.MatchString(text):
		return domain.IntentAddToCart, addRe
	case cartRe.MatchString(text):
		return domain.IntentViewCart, nil
	case searchRe.MatchString(text):
		return domain.IntentSearchProduct, searchRe
	}
	return domain.IntentUnknown, nil
}

// extract reads the product phrase that follows the verb and, when
// withStore is set, a trailing "from <store>".
func extract(text string, verb *regexp.Regexp, withStore bool) []domain.Entity {
	loc := verb.FindStringIndex(text)
	if loc == nil {
		return []domain.Entity{}
	}
	rest := cartPhraseRe.ReplaceAllString(text[loc[1]:], "")
	rest = trailRe.ReplaceAllString(strings.TrimSpace(rest), "")

	var store string
	if withStore {
		if m := storeRe.FindStringSubmatchIndex(rest); m != nil {
			store = strings.TrimSpace(rest[m[2]:m[3]])
			rest = rest[:m[0]]
		}
	}

	product := strings.TrimSpace(fillerRe.ReplaceAllString(strings.TrimSpace(rest), ""))

	ents := []domain.Entity{}
	if product != "" {
		ents = append(ents, domain.Entity{Text: product, Label: domain.LabelProduct})
	}
	if store != "" {
		ents = append(ents, domain.Entity{Text: store, Label: domain.LabelStore})
	}
	return ents
}
