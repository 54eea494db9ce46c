package models

import "time"

// Deck is a collection of flashcards owned by a user. A deck may be shared
// with the owner's active partnership, in which case the partner can view
// and edit it while keeping fully independent study progress.
type Deck struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	CreatedBy   int       `json:"createdBy"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Shared      bool      `json:"shared"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DeckDetail is a deck with its cards and the requesting user's due count
type DeckDetail struct {
	Deck
	Cards    []Card `json:"cards"`
	DueCount int    `json:"dueCount"`
}
