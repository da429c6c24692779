// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrRoundNotFound is returned when a round ID has no record.
var ErrRoundNotFound = errors.New("storage: round not found")

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundRecord is a single finished round.
type RoundRecord struct {
	ID         int64
	RoundID    string // UUID assigned on save when empty
	GameID     string
	Player     string // "local" or the SSH user name
	Seed       int64
	Round      int // Round number within the session
	RoadLength int
	Steps      int
	Reason     string
	CreatedAt  time.Time
}

// Stats contains aggregated statistics for a game.
type Stats struct {
	GameID     string
	Rounds     int
	BestSteps  int
	AvgSteps   float64
	TotalSteps int64
	Reasons    map[string]int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			seed INTEGER NOT NULL,
			round_no INTEGER NOT NULL,
			road_length INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, steps DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its round ID.
func (s *Store) SaveRound(rec RoundRecord) (string, error) {
	if rec.RoundID == "" {
		rec.RoundID = uuid.NewString()
	}
	if rec.Player == "" {
		rec.Player = "local"
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (round_id, game_id, player, seed, round_no, road_length, steps, reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RoundID, rec.GameID, rec.Player, rec.Seed,
		rec.Round, rec.RoadLength, rec.Steps, rec.Reason,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	return rec.RoundID, nil
}

const roundColumns = `id, round_id, game_id, player, seed, round_no, road_length, steps, reason, created_at`

// TopRounds retrieves the N rounds with the most steps for the given game.
func (s *Store) TopRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY steps DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// RecentRounds retrieves the most recent rounds for the given game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// PlayerRounds retrieves the most recent rounds of one player.
func (s *Store) PlayerRounds(player string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player rounds: %w", err)
	}
	return scanRounds(rows)
}

// RoundByID retrieves a round by its round ID.
func (s *Store) RoundByID(roundID string) (RoundRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+roundColumns+` FROM rounds WHERE round_id = ?`,
		roundID,
	)
	if err != nil {
		return RoundRecord{}, fmt.Errorf("storage: cannot query round: %w", err)
	}

	recs, err := scanRounds(rows)
	if err != nil {
		return RoundRecord{}, err
	}
	if len(recs) == 0 {
		return RoundRecord{}, ErrRoundNotFound
	}
	return recs[0], nil
}

func scanRounds(rows *sql.Rows) ([]RoundRecord, error) {
	defer rows.Close()

	var recs []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.RoundID, &r.GameID, &r.Player, &r.Seed,
			&r.Round, &r.RoadLength, &r.Steps, &r.Reason, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		recs = append(recs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return recs, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestSteps returns the most steps reached in a round of the given game.
// Returns 0 if no rounds exist.
func (s *Store) BestSteps(gameID string) (int, error) {
	var steps sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(steps) FROM rounds WHERE game_id = ?",
		gameID,
	).Scan(&steps)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best steps: %w", err)
	}

	if !steps.Valid {
		return 0, nil
	}
	return int(steps.Int64), nil
}

// ClearRounds deletes all rounds for the given game.
func (s *Store) ClearRounds(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// GameStats retrieves aggregated statistics for a game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID, Reasons: make(map[string]int)}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(steps), 0), COALESCE(AVG(steps), 0),
		        COALESCE(SUM(steps), 0), MAX(created_at)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.BestSteps, &stats.AvgSteps, &stats.TotalSteps, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	rows, err := s.db.Query(
		`SELECT reason, COUNT(*) FROM rounds WHERE game_id = ? GROUP BY reason`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get reason counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats.Reasons[reason] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
