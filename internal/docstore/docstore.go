// Package docstore is the durable document layer: a key→document map over
// Postgres JSONB. Documents are read and written wholesale; there is no
// partial patching and no optimistic concurrency control; the system assumes
// a single administrative writer per document.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guesstherank/gtr-data/internal/config"
	"github.com/guesstherank/gtr-data/internal/model"
)

// PlayersDocument is the persisted snapshot of the full player roster.
// Count always equals len(Players); UpdatedAt advances on every save.
type PlayersDocument struct {
	Players   []model.PlayerRecord `json:"players"`
	UpdatedAt time.Time            `json:"updatedAt"`
	Count     int                  `json:"count"`
}

// EarningsDocument is the persisted snapshot of one earnings leaderboard.
type EarningsDocument struct {
	Data      []model.EarningsRecord `json:"data"`
	UpdatedAt time.Time              `json:"updatedAt"`
	Count     int                    `json:"count"`
}

// Store reads and writes documents through the shared connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// GetPlayers loads the current players document. Returns nil (and no error)
// when no document has been saved yet.
func (s *Store) GetPlayers(ctx context.Context) (*PlayersDocument, error) {
	var doc PlayersDocument
	if err := s.get(ctx, config.PlayersDocKey, &doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// SetPlayers replaces the players document wholesale and returns the saved
// snapshot.
func (s *Store) SetPlayers(ctx context.Context, players []model.PlayerRecord) (*PlayersDocument, error) {
	doc := &PlayersDocument{
		Players:   players,
		UpdatedAt: time.Now().UTC(),
		Count:     len(players),
	}
	if err := s.set(ctx, config.PlayersDocKey, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetEarnings loads one earnings document by key. Returns nil when the
// document does not exist yet.
func (s *Store) GetEarnings(ctx context.Context, key string) (*EarningsDocument, error) {
	var doc EarningsDocument
	if err := s.get(ctx, key, &doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// SetEarnings replaces one earnings document wholesale.
func (s *Store) SetEarnings(ctx context.Context, key string, records []model.EarningsRecord) error {
	doc := &EarningsDocument{
		Data:      records,
		UpdatedAt: time.Now().UTC(),
		Count:     len(records),
	}
	return s.set(ctx, key, doc)
}

func (s *Store) get(ctx context.Context, key string, out interface{}) error {
	var raw []byte
	if err := s.pool.QueryRow(ctx, "doc_get", key).Scan(&raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode document %q: %w", key, err)
	}
	return nil
}

func (s *Store) set(ctx context.Context, key string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %q: %w", key, err)
	}
	if _, err := s.pool.Exec(ctx, "doc_set", key, raw); err != nil {
		return fmt.Errorf("save document %q: %w", key, err)
	}
	return nil
}
