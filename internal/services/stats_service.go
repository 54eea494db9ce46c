package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"go.uber.org/zap"
)

// StatsReviewRepository is the interface that wraps review aggregates used by statistics
type StatsReviewRepository interface {
	// GetUserStats aggregates the user's review history across all decks.
	GetUserStats(ctx context.Context, userID int) (models.UserStats, error)
	// GetDeckReviewStats aggregates the user's review history for one deck.
	GetDeckReviewStats(ctx context.Context, userID, deckID int) (int, *float64, error)
}

// StatsProgressRepository is the interface that wraps progress aggregates used by statistics
type StatsProgressRepository interface {
	// CountDueCards counts cards due for the user in at least one direction.
	CountDueCards(ctx context.Context, userID, deckID int, now time.Time) (int, error)
	// CountDueRecords counts the user's due progress records across all decks.
	CountDueRecords(ctx context.Context, userID int, now time.Time) (int, error)
}

// StatsCardRepository is the interface that wraps card counts used by statistics
type StatsCardRepository interface {
	// CountByDeck returns the number of cards in a deck.
	CountByDeck(ctx context.Context, deckID int) (int, error)
}

// StatsDeckPermissions is the interface for deck permission checks consumed
// by statistics
type StatsDeckPermissions interface {
	// CanViewDeck reports whether the user may view the deck.
	CanViewDeck(ctx context.Context, userID, deckID int) (bool, error)
}

// statsService implements read-only learning statistics
type statsService struct {
	reviewRepo   StatsReviewRepository
	progressRepo StatsProgressRepository
	cardRepo     StatsCardRepository
	permissions  StatsDeckPermissions
	logger       *zap.Logger
	now          func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(
	reviewRepo StatsReviewRepository,
	progressRepo StatsProgressRepository,
	cardRepo StatsCardRepository,
	permissions StatsDeckPermissions,
	logger *zap.Logger,
) *statsService {
	return &statsService{
		reviewRepo:   reviewRepo,
		progressRepo: progressRepo,
		cardRepo:     cardRepo,
		permissions:  permissions,
		logger:       logger,
		now:          time.Now,
	}
}

// GetUserStats returns the user's study statistics across all decks
func (s *statsService) GetUserStats(ctx context.Context, userID int) (models.UserStats, error) {
	stats, err := s.reviewRepo.GetUserStats(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load user stats", zap.Error(err))
		return models.UserStats{}, fmt.Errorf("failed to load user stats: %w", err)
	}

	dueToday, err := s.progressRepo.CountDueRecords(ctx, userID, s.now())
	if err != nil {
		s.logger.Error("failed to count due records", zap.Error(err))
		return models.UserStats{}, fmt.Errorf("failed to count due records: %w", err)
	}
	stats.DueToday = dueToday

	return stats, nil
}

// GetDeckStats returns the user's study statistics for one deck
func (s *statsService) GetDeckStats(ctx context.Context, userID, deckID int) (models.DeckStats, error) {
	canView, err := s.permissions.CanViewDeck(ctx, userID, deckID)
	if err != nil {
		return models.DeckStats{}, err
	}
	if !canView {
		return models.DeckStats{}, fmt.Errorf("user %d cannot view deck %d: %w", userID, deckID, models.ErrForbidden)
	}

	totalCards, err := s.cardRepo.CountByDeck(ctx, deckID)
	if err != nil {
		s.logger.Error("failed to count deck cards", zap.Error(err))
		return models.DeckStats{}, fmt.Errorf("failed to count deck cards: %w", err)
	}

	dueCount, err := s.progressRepo.CountDueCards(ctx, userID, deckID, s.now())
	if err != nil {
		s.logger.Error("failed to count due cards", zap.Error(err))
		return models.DeckStats{}, fmt.Errorf("failed to count due cards: %w", err)
	}

	totalReviews, averageQuality, err := s.reviewRepo.GetDeckReviewStats(ctx, userID, deckID)
	if err != nil {
		s.logger.Error("failed to load deck review stats", zap.Error(err))
		return models.DeckStats{}, fmt.Errorf("failed to load deck review stats: %w", err)
	}

	return models.DeckStats{
		DeckID:         deckID,
		TotalCards:     totalCards,
		DueCount:       dueCount,
		TotalReviews:   totalReviews,
		AverageQuality: averageQuality,
	}, nil
}
