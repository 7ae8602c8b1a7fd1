package engine

import (
	"errors"

	"teamsort/internal/model"
)

// ErrOutOfRange is returned for a question index outside the catalog.
// It signals a broken invariant, never bad external input.
var ErrOutOfRange = errors.New("catalog: question index out of range")

// Catalog is the immutable interview question pool, populated once at
// startup. Safe for concurrent reads.
type Catalog struct {
	questions []model.Question
}

// NewCatalog copies qs so later mutation of the input slice cannot
// leak into the catalog.
func NewCatalog(qs []model.Question) *Catalog {
	questions := make([]model.Question, len(qs))
	copy(questions, qs)
	return &Catalog{questions: questions}
}

// Size returns the number of questions in the catalog.
func (c *Catalog) Size() int {
	return len(c.questions)
}

// Get returns the question at catalog position idx.
func (c *Catalog) Get(idx int) (model.Question, error) {
	if idx < 0 || idx >= len(c.questions) {
		return model.Question{}, ErrOutOfRange
	}
	return c.questions[idx], nil
}
