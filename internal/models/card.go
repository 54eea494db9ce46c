package models

import "time"

// Card is a two-sided flashcard. Cards carry no scheduling state; all
// scheduling lives in CardProgress so shared cards never leak progress
// between users or directions.
type Card struct {
	ID        int       `json:"id"`
	DeckID    int       `json:"deckId"`
	ContentA  string    `json:"contentA"`
	ContentB  string    `json:"contentB"`
	LanguageA string    `json:"languageA"`
	LanguageB string    `json:"languageB"`
	Context   string    `json:"context,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Present resolves the card into question/answer order for a direction
func (c Card) Present(direction Direction) PresentableCard {
	question, answer := c.ContentA, c.ContentB
	if direction == DirectionBToA {
		question, answer = c.ContentB, c.ContentA
	}
	return PresentableCard{
		CardID:    c.ID,
		Question:  question,
		Answer:    answer,
		Context:   c.Context,
		Direction: direction,
	}
}
