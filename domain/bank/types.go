// Package bank holds the static question banks for the seven assessment
// layers. The banks are configuration data: the scoring pipeline treats the
// text as opaque and only reads IDs, tags, weights, and routing fields.
// Validate checks the tag vocabulary of every option at load time so a
// missing-entry gap cannot surface at scoring time.
package bank

import (
	"edna/domain/identity"
	"edna/domain/mirror"
)

// QuestionID is a unique, layer-scoped question identifier (e.g. "L1_Q3")
type QuestionID string

// Option is one selectable answer. Tag carries the layer-specific
// classification label; Weight is only meaningful on Layer 3 options.
type Option struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Tag    string `json:"tag,omitempty"`
	Weight int    `json:"weight,omitempty"`
}

// Question is one question in a layer's bank. Dimension routes Layer 3
// options to a mirror axis; Trait routes Layer 5 questions to a capability
// trait; Axis routes Layer 6 questions to a drive axis.
type Question struct {
	ID        QuestionID       `json:"id"`
	Layer     int              `json:"layer"`
	Prompt    string           `json:"prompt"`
	Dimension mirror.Dimension `json:"dimension,omitempty"`
	Trait     string           `json:"trait,omitempty"`
	Axis      string           `json:"axis,omitempty"`
	Options   []Option         `json:"options"`
}

// Option looks up an option by its value
func (q Question) Option(value string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// LayerOrder is the sequence the quiz flow walks. All seven layers appear;
// Layer 4 is recorded context without a classifier of its own.
func LayerOrder() []int {
	return []int{1, 2, 3, 4, 5, 6, 7}
}

// ForLayer returns the question set for a layer. Layer 2 branches on the
// core type resolved at the Layer 1 boundary; every other layer ignores it.
func ForLayer(layer int, coreType identity.CoreType) []Question {
	switch layer {
	case 1:
		return Layer1()
	case 2:
		return Layer2(coreType)
	case 3:
		return Layer3()
	case 4:
		return Layer4()
	case 5:
		return Layer5()
	case 6:
		return Layer6()
	case 7:
		return Layer7()
	default:
		return nil
	}
}

// All returns every question across all layers and branches
func All() []Question {
	var qs []Question
	qs = append(qs, Layer1()...)
	for _, ct := range identity.CoreTypes() {
		qs = append(qs, Layer2(ct)...)
	}
	qs = append(qs, Layer3()...)
	qs = append(qs, Layer4()...)
	qs = append(qs, Layer5()...)
	qs = append(qs, Layer6()...)
	qs = append(qs, Layer7()...)
	return qs
}

// Find locates a question by ID across all layers and branches
func Find(id QuestionID) (Question, bool) {
	for _, q := range All() {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
