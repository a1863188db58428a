package memory

import (
	"context"
	"fmt"
	"time"

	"cestodamore/internal/clock"
	"cestodamore/pkg/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Retention policies.
const (
	// SummaryTTL is how long a saved customer summary stays relevant.
	SummaryTTL = 15 * 24 * time.Hour

	// BlockTTL is the expiry extension applied when a session is blocked.
	BlockTTL = 4 * 24 * time.Hour
)

// Store is the persistence slice the service needs. The production
// implementation is gormStore.
type Store interface {
	UpsertSummary(ctx context.Context, record *models.CustomerMemory) error
	BlockSession(ctx context.Context, id uuid.UUID, expiresAt time.Time) (int64, error)
}

type gormStore struct {
	db *gorm.DB
}

// UpsertSummary writes the memory row in a single atomic statement.
// Concurrent saves for the same phone race under last-writer-wins; the
// conflict clause keeps the loser from surfacing a unique-index error.
func (s *gormStore) UpsertSummary(ctx context.Context, record *models.CustomerMemory) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"summary", "expires_at", "updated_at"}),
	}).Create(record).Error
}

// BlockSession flips the blocked flag and returns how many rows matched.
func (s *gormStore) BlockSession(ctx context.Context, id uuid.UUID, expiresAt time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&models.Session{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_blocked": true,
			"expires_at": expiresAt,
		})
	return result.RowsAffected, result.Error
}

// Service persists per-customer summaries and flips the session-blocked
// flag when a conversation is handed off to a human.
type Service struct {
	store Store
	clock clock.Clock
}

// NewService creates a memory service over the database.
func NewService(db *gorm.DB, clk clock.Clock) *Service {
	return &Service{store: &gormStore{db: db}, clock: clk}
}

// SaveSummary upserts the long-term memory for a customer phone. Each
// call fully replaces the prior summary (last writer wins, no merging)
// and recomputes the expiry from the call's own time.
func (s *Service) SaveSummary(ctx context.Context, customerPhone, summary string) (*models.CustomerMemory, error) {
	record := &models.CustomerMemory{
		CustomerPhone: customerPhone,
		Summary:       summary,
		ExpiresAt:     s.clock.Now().Add(SummaryTTL),
	}
	if err := s.store.UpsertSummary(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save customer memory: %w", err)
	}

	log.Info().Str("customer_phone", customerPhone).Msg("Customer memory replaced")
	return record, nil
}

// BlockOutcome distinguishes "blocked" from "no such session". A stale id
// is expected (the caller cannot always guarantee freshness), so it is an
// outcome, not an error, and no row is created for it.
type BlockOutcome string

const (
	BlockDone     BlockOutcome = "blocked"
	BlockNotFound BlockOutcome = "not_found"
)

// BlockSession marks a session so the automated agent stops responding,
// extending its expiry by the block TTL.
func (s *Service) BlockSession(ctx context.Context, sessionID uuid.UUID) (BlockOutcome, error) {
	expiresAt := s.clock.Now().Add(BlockTTL)

	affected, err := s.store.BlockSession(ctx, sessionID, expiresAt)
	if err != nil {
		return "", fmt.Errorf("failed to block session: %w", err)
	}
	if affected == 0 {
		log.Warn().Str("session_id", sessionID.String()).Msg("Block requested for unknown session")
		return BlockNotFound, nil
	}

	log.Info().
		Str("session_id", sessionID.String()).
		Time("expires_at", expiresAt).
		Msg("Session blocked for human handoff")
	return BlockDone, nil
}
