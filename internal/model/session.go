package model

import "time"

type SessionStatus string

const (
	// SessionCreated means the opening question is chosen but no answer
	// has been processed yet.
	SessionCreated    SessionStatus = "created"
	SessionInProgress SessionStatus = "in_progress"
	SessionEnded      SessionStatus = "ended"
)

// Session is one applicant's in-progress or completed interview. It is
// mutated only through the engine package and must be written by one
// goroutine at a time; the owning service serializes access per ID.
type Session struct {
	ID         string        `json:"id"`
	Status     SessionStatus `json:"status"`
	AskedCount int           `json:"askedCount"`

	Scores               map[Category]float64 `json:"scores"`
	AskedQuestions       []int                `json:"askedQuestions"`
	AreaCounts           map[Category]int     `json:"areaCounts"`
	CurrentQuestionIndex int                  `json:"currentQuestionIndex"`
	PositiveAnswerCount  int                  `json:"positiveAnswerCount"`

	// GlobalCategoryWeights is captured once at session start and held
	// fixed for the session's lifetime.
	GlobalCategoryWeights map[Category]float64 `json:"globalCategoryWeights"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewSession builds a session with every category key present in the
// score and counter maps, so they are never partial.
func NewSession(id string, globalWeights map[Category]float64) *Session {
	scores := make(map[Category]float64, len(Categories))
	areaCounts := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		scores[c] = 0
		areaCounts[c] = 0
	}
	if globalWeights == nil {
		globalWeights = map[Category]float64{}
	}
	return &Session{
		ID:                    id,
		Status:                SessionCreated,
		Scores:                scores,
		AskedQuestions:        []int{},
		AreaCounts:            areaCounts,
		GlobalCategoryWeights: globalWeights,
		CreatedAt:             time.Now().UTC(),
	}
}
