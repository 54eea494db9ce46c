package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"github.com/vr1e/flashcard-study-sub000/internal/scheduler"
	"go.uber.org/zap"
)

// DefaultSessionLimit bounds how many cards a single session serves. It
// caps both session length and the due-query cost per request.
const DefaultSessionLimit = 20

// ProgressRepository is the interface that wraps methods for CardProgress table data access
type ProgressRepository interface {
	// GetOrCreate returns the progress record for (user, card, direction),
	// creating it with scheduling defaults on first access. Creation is
	// backed by an atomic upsert; concurrent first reviews observe the
	// same record.
	GetOrCreate(ctx context.Context, userID, cardID int, direction models.Direction, now time.Time) (models.CardProgress, error)
	// SaveWithReview overwrites the progress record and appends the review
	// log entry as a single atomic unit.
	SaveWithReview(ctx context.Context, progress models.CardProgress, review models.Review) error
	// FindDue returns due progress records for a user, deck and direction,
	// including fresh default records for cards never reviewed in that
	// direction, capped at limit.
	FindDue(ctx context.Context, userID, deckID int, direction models.Direction, now time.Time, limit int) ([]models.CardProgress, error)
	// GetByUserAndDeck returns all existing progress records the user has
	// for cards in a deck, both directions.
	GetByUserAndDeck(ctx context.Context, userID, deckID int) ([]models.CardProgress, error)
}

// SessionRepository is the interface that wraps methods for StudySession table data access
type SessionRepository interface {
	// Create inserts the session with its drawn card list and returns the
	// new session ID.
	Create(ctx context.Context, session models.StudySession, cards []models.SessionCard) (int, error)
	// GetByID retrieves a study session.
	GetByID(ctx context.Context, sessionID int) (models.StudySession, error)
	// GetSessionCard retrieves the drawn direction for a card in a session.
	GetSessionCard(ctx context.Context, sessionID, cardID int) (models.SessionCard, error)
	// IncrementCardsStudied bumps the session's review counter.
	IncrementCardsStudied(ctx context.Context, sessionID int) error
	// End marks the session ended; a no-op if already ended.
	End(ctx context.Context, sessionID int, endedAt time.Time) error
}

// StudyCardRepository is the interface that wraps card lookups used by study sessions
type StudyCardRepository interface {
	// GetByDeck retrieves all cards in a deck.
	GetByDeck(ctx context.Context, deckID int) ([]models.Card, error)
	// GetByIDs retrieves cards by their IDs.
	GetByIDs(ctx context.Context, cardIDs []int) ([]models.Card, error)
}

// SessionReviewRepository is the interface that wraps review aggregates used by sessions
type SessionReviewRepository interface {
	// GetSessionAverageQuality returns the mean quality of a session's
	// reviews, or nil when it has none.
	GetSessionAverageQuality(ctx context.Context, sessionID int) (*float64, error)
}

// DeckAccessChecker is the interface for deck permission checks consumed
// by the study flow
type DeckAccessChecker interface {
	// CanViewDeck reports whether the user may study the deck.
	CanViewDeck(ctx context.Context, userID, deckID int) (bool, error)
}

// studyService coordinates study sessions: it selects due cards, applies
// quality ratings through the scheduler, and persists the results
type studyService struct {
	progressRepo ProgressRepository
	sessionRepo  SessionRepository
	reviewRepo   SessionReviewRepository
	permissions  DeckAccessChecker
	selector     *dueCardSelector
	logger       *zap.Logger
	now          func() time.Time
	limit        int
}

// NewStudyService creates a new study service
func NewStudyService(
	progressRepo ProgressRepository,
	sessionRepo SessionRepository,
	cardRepo StudyCardRepository,
	reviewRepo SessionReviewRepository,
	permissions DeckAccessChecker,
	logger *zap.Logger,
) *studyService {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &studyService{
		progressRepo: progressRepo,
		sessionRepo:  sessionRepo,
		reviewRepo:   reviewRepo,
		permissions:  permissions,
		selector:     newDueCardSelector(progressRepo, cardRepo, rng),
		logger:       logger,
		now:          time.Now,
		limit:        DefaultSessionLimit,
	}
}

// StartSession opens a study session over a deck. The due-card list is
// drawn once, here, and its per-card directions are fixed for the life of
// the session. An empty due list still yields a valid (empty) session.
func (s *studyService) StartSession(ctx context.Context, userID, deckID int, choice models.DirectionChoice) (models.SessionStart, error) {
	if !choice.Valid() {
		return models.SessionStart{}, fmt.Errorf("invalid direction choice %q: %w", choice, models.ErrDirectionMismatch)
	}

	canView, err := s.permissions.CanViewDeck(ctx, userID, deckID)
	if err != nil {
		s.logger.Error("failed to check deck access", zap.Error(err))
		return models.SessionStart{}, fmt.Errorf("failed to check deck access: %w", err)
	}
	if !canView {
		return models.SessionStart{}, fmt.Errorf("user %d cannot study deck %d: %w", userID, deckID, models.ErrForbidden)
	}

	now := s.now()

	cards, err := s.selector.Select(ctx, userID, deckID, choice, now, s.limit)
	if err != nil {
		s.logger.Error("failed to select due cards", zap.Error(err))
		return models.SessionStart{}, fmt.Errorf("failed to select due cards: %w", err)
	}

	var sessionDirection *models.Direction
	if choice != models.ChoiceRandom {
		d := models.Direction(choice)
		sessionDirection = &d
	}

	session := models.StudySession{
		UserID:    userID,
		DeckID:    deckID,
		Direction: sessionDirection,
		StartedAt: now,
	}

	sessionCards := make([]models.SessionCard, len(cards))
	for i, card := range cards {
		sessionCards[i] = models.SessionCard{
			CardID:    card.CardID,
			Direction: card.Direction,
			Position:  i,
		}
	}

	sessionID, err := s.sessionRepo.Create(ctx, session, sessionCards)
	if err != nil {
		s.logger.Error("failed to create study session", zap.Error(err))
		return models.SessionStart{}, fmt.Errorf("failed to create study session: %w", err)
	}

	return models.SessionStart{
		SessionID: sessionID,
		Direction: sessionDirection,
		Cards:     cards,
	}, nil
}

// SubmitReview applies one quality rating to the card's progress record
// for the direction the session drew it with. All validation happens
// before any state is touched; the progress update and the review log
// entry are then persisted atomically.
func (s *studyService) SubmitReview(ctx context.Context, userID, sessionID, cardID int, direction models.Direction, quality, timeTakenSeconds int) (models.ScheduleResult, error) {
	if quality < models.MinQuality || quality > models.MaxQuality {
		return models.ScheduleResult{}, fmt.Errorf("quality %d: %w", quality, models.ErrInvalidQuality)
	}
	if !direction.Valid() {
		return models.ScheduleResult{}, fmt.Errorf("direction %q: %w", direction, models.ErrDirectionMismatch)
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return models.ScheduleResult{}, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != userID {
		return models.ScheduleResult{}, fmt.Errorf("session %d belongs to another user: %w", sessionID, models.ErrForbidden)
	}
	if session.EndedAt != nil {
		return models.ScheduleResult{}, fmt.Errorf("session %d: %w", sessionID, models.ErrSessionEnded)
	}
	if session.Direction != nil && *session.Direction != direction {
		return models.ScheduleResult{}, fmt.Errorf("session direction is %s: %w", *session.Direction, models.ErrDirectionMismatch)
	}

	// The server's drawn direction is authoritative. For random sessions
	// this is what stops a client from re-submitting a card under
	// whichever direction it finds easier.
	sessionCard, err := s.sessionRepo.GetSessionCard(ctx, sessionID, cardID)
	if err != nil {
		return models.ScheduleResult{}, fmt.Errorf("failed to load session card: %w", err)
	}
	if sessionCard.Direction != direction {
		return models.ScheduleResult{}, fmt.Errorf("card %d was drawn as %s: %w", cardID, sessionCard.Direction, models.ErrDirectionMismatch)
	}

	now := s.now()

	progress, err := s.progressRepo.GetOrCreate(ctx, userID, cardID, direction, now)
	if err != nil {
		s.logger.Error("failed to load progress record", zap.Error(err))
		return models.ScheduleResult{}, fmt.Errorf("failed to load progress record: %w", err)
	}

	updated := scheduler.Apply(progress, quality, now)

	review := models.Review{
		ProgressID:       progress.ID,
		SessionID:        sessionID,
		Quality:          quality,
		Direction:        direction,
		TimeTakenSeconds: timeTakenSeconds,
		ReviewedAt:       now,
	}

	if err := s.progressRepo.SaveWithReview(ctx, updated, review); err != nil {
		s.logger.Error("failed to persist review", zap.Error(err))
		return models.ScheduleResult{}, fmt.Errorf("failed to persist review: %w", err)
	}

	// The schedule update is already durable; a failed counter bump must
	// not make the client retry and double-apply the rating.
	if err := s.sessionRepo.IncrementCardsStudied(ctx, sessionID); err != nil {
		s.logger.Warn("failed to increment session counter", zap.Int("session_id", sessionID), zap.Error(err))
	}

	return models.ScheduleResult{
		NextReviewAt: updated.NextReviewAt,
		IntervalDays: updated.IntervalDays,
		EaseFactor:   updated.EaseFactor,
	}, nil
}

// EndSession marks the session completed and reports its summary. Ending
// an already-ended session returns the same summary again.
func (s *studyService) EndSession(ctx context.Context, userID, sessionID int) (models.SessionSummary, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return models.SessionSummary{}, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != userID {
		return models.SessionSummary{}, fmt.Errorf("session %d belongs to another user: %w", sessionID, models.ErrForbidden)
	}

	endedAt := s.now()
	if session.EndedAt != nil {
		endedAt = *session.EndedAt
	} else if err := s.sessionRepo.End(ctx, sessionID, endedAt); err != nil {
		s.logger.Error("failed to end session", zap.Error(err))
		return models.SessionSummary{}, fmt.Errorf("failed to end session: %w", err)
	}

	averageQuality, err := s.reviewRepo.GetSessionAverageQuality(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to compute session average", zap.Error(err))
		return models.SessionSummary{}, fmt.Errorf("failed to compute session average: %w", err)
	}

	return models.SessionSummary{
		CardsStudied:   session.CardsStudied,
		ElapsedSeconds: int(endedAt.Sub(session.StartedAt).Seconds()),
		AverageQuality: averageQuality,
	}, nil
}
