package models

import "time"

// Direction identifies which side of a card is shown as the prompt.
type Direction string

const (
	DirectionAToB Direction = "a_to_b"
	DirectionBToA Direction = "b_to_a"
)

// Valid reports whether the direction is one of the two concrete values
func (d Direction) Valid() bool {
	return d == DirectionAToB || d == DirectionBToA
}

// DirectionChoice is a study request's direction selection.
// It allows "random" in addition to the two concrete directions.
type DirectionChoice string

const (
	ChoiceAToB   DirectionChoice = "a_to_b"
	ChoiceBToA   DirectionChoice = "b_to_a"
	ChoiceRandom DirectionChoice = "random"
)

// Valid reports whether the choice is one of the supported values
func (c DirectionChoice) Valid() bool {
	return c == ChoiceAToB || c == ChoiceBToA || c == ChoiceRandom
}

// Default values for a progress record created on first review.
const (
	DefaultEaseFactor   = 2.5
	DefaultIntervalDays = 1
	MinEaseFactor       = 1.3
)

// CardProgress is the per-(user, card, direction) scheduling state.
// Exactly one record exists per triple; two users studying the same card,
// or one user studying both directions, schedule independently.
type CardProgress struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	CardID       int       `json:"cardId"`
	Direction    Direction `json:"direction"`
	EaseFactor   float64   `json:"easeFactor"`   // never below MinEaseFactor
	IntervalDays int       `json:"intervalDays"` // days until next review
	Repetitions  int       `json:"repetitions"`  // consecutive successful reviews
	NextReviewAt time.Time `json:"nextReviewAt"`
}

// IsDue reports whether the record is due for review at the given time
func (p CardProgress) IsDue(now time.Time) bool {
	return !p.NextReviewAt.After(now)
}

// NewCardProgress returns a fresh record with scheduling defaults
func NewCardProgress(userID, cardID int, direction Direction, now time.Time) CardProgress {
	return CardProgress{
		UserID:       userID,
		CardID:       cardID,
		Direction:    direction,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: DefaultIntervalDays,
		Repetitions:  0,
		NextReviewAt: now,
	}
}

// PresentableCard is a due card resolved for presentation in a session
type PresentableCard struct {
	CardID    int       `json:"cardId"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Context   string    `json:"context,omitempty"`
	Direction Direction `json:"direction"`
}

// ScheduleResult is returned to the client after a review is applied
type ScheduleResult struct {
	NextReviewAt time.Time `json:"nextReviewAt"`
	IntervalDays int       `json:"intervalDays"`
	EaseFactor   float64   `json:"easeFactor"`
}
