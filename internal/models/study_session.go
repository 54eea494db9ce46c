package models

import "time"

// StudySession tracks one study run over a deck. Direction is nil for
// mixed-direction (random) sessions. A session with EndedAt set is
// completed and accepts no further reviews.
type StudySession struct {
	ID           int        `json:"id"`
	UserID       int        `json:"userId"`
	DeckID       int        `json:"deckId"`
	Direction    *Direction `json:"direction"`
	StartedAt    time.Time  `json:"startedAt"`
	EndedAt      *time.Time `json:"endedAt"`
	CardsStudied int        `json:"cardsStudied"`
}

// SessionCard records which direction the server drew for a card when the
// session was started. Submissions must match it; the client never gets to
// re-pick a direction after seeing the card.
type SessionCard struct {
	SessionID int
	CardID    int
	Direction Direction
	Position  int
}

// SessionStart is the response payload for a newly started session
type SessionStart struct {
	SessionID int               `json:"sessionId"`
	Direction *Direction        `json:"direction"`
	Cards     []PresentableCard `json:"cards"`
}

// SessionSummary is the closing report for a session. AverageQuality is nil
// when the session had no reviews; an empty session has no defined mean.
type SessionSummary struct {
	CardsStudied   int      `json:"cardsStudied"`
	ElapsedSeconds int      `json:"elapsedSeconds"`
	AverageQuality *float64 `json:"averageQuality"`
}
