// Package ai declares the language capabilities the interview pipeline
// consumes. Concrete providers live in sub-packages.
package ai

import (
	"context"
	"errors"
)

// ErrNotUnderstood is returned by a Transcriber when the audio holds no
// recognizable speech.
var ErrNotUnderstood = errors.New("speech not understood")

// Entity labels used by the default keyword allow-list.
const (
	LabelOrganization = "ORG"
	LabelSkill        = "SKILL"
	LabelWorkOfArt    = "WORK_OF_ART"
	LabelProduct      = "PRODUCT"
)

// Entity is a span of text classified into a category label. The label
// taxonomy is provider specific and treated as opaque.
type Entity struct {
	Text  string `json:"text" mapstructure:"text"`
	Label string `json:"label" mapstructure:"label"`
}

// Analysis is the result of running linguistic analysis over a text.
type Analysis struct {
	Entities   []Entity
	NounChunks []string
}

// Analyzer recognizes entities and noun phrases in text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*Analysis, error)
	Name() string
}

// Transcriber turns recorded speech into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}
