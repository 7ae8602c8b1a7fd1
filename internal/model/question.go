package model

// Question is an immutable catalog entry. Weights is sparse: categories
// absent from the map contribute zero.
type Question struct {
	Text    string               `json:"text"`
	Weights map[Category]float64 `json:"weights"`
	Primary Category             `json:"primary"`
	Tags    []string             `json:"tags,omitempty"`
}

// Weight returns the question's contribution coefficient for c.
func (q Question) Weight(c Category) float64 {
	return q.Weights[c]
}
