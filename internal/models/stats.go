package models

// UserStats aggregates a user's study activity across all decks
type UserStats struct {
	TotalReviews   int      `json:"totalReviews"`
	CardsStudied   int      `json:"cardsStudied"` // distinct (card, direction) pairs reviewed
	AverageQuality *float64 `json:"averageQuality"`
	DueToday       int      `json:"dueToday"`
	SessionCount   int      `json:"sessionCount"`
}

// DeckStats aggregates one deck's study activity for a user
type DeckStats struct {
	DeckID         int      `json:"deckId"`
	TotalCards     int      `json:"totalCards"`
	DueCount       int      `json:"dueCount"`
	TotalReviews   int      `json:"totalReviews"`
	AverageQuality *float64 `json:"averageQuality"`
}
