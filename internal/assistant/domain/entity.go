package domain

import "errors"

// Entity labels the assistant reads. Other labels pass through untouched.
const (
	LabelProduct = "product"
	LabelStore   = "store"
)

// ErrClassification marks a failed NLU call.
var ErrClassification = errors.New("classification failed")

type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Classification is what an NLU provider extracts from one message.
type Classification struct {
	Intent   string   `json:"intent"`
	Entities []Entity `json:"entities"`
}
