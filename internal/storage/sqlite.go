// Package storage persists finished tower defense sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Session is one finished (or abandoned) game.
type Session struct {
	ID          int64
	GameID      string // Registry mode ID, e.g. "towers-hard"
	Outcome     string // "win", "loss" or "ongoing" when quit early
	Ticks       uint64
	Resources   int // Balance at the end
	Lives       int
	TowersBuilt int
	Spawned     int
	Defeated    int
	Earned      int // Total reward, used as the score
	Spent       int
	CreatedAt   time.Time
}

// GameStats aggregates all sessions of one mode.
type GameStats struct {
	GameID     string
	Sessions   int
	Wins       int
	Losses     int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			resources INTEGER NOT NULL DEFAULT 0,
			lives INTEGER NOT NULL DEFAULT 0,
			towers_built INTEGER NOT NULL DEFAULT 0,
			spawned INTEGER NOT NULL DEFAULT 0,
			defeated INTEGER NOT NULL DEFAULT 0,
			earned INTEGER NOT NULL DEFAULT 0,
			spent INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(game_id, earned DESC);
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

// SaveSession records a session and returns its row ID.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (game_id, outcome, ticks, resources, lives, towers_built, spawned, defeated, earned, spent)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.GameID, sess.Outcome, int64(sess.Ticks), sess.Resources, sess.Lives,
		sess.TowersBuilt, sess.Spawned, sess.Defeated, sess.Earned, sess.Spent,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const sessionColumns = `id, game_id, outcome, ticks, resources, lives,
	towers_built, spawned, defeated, earned, spent, created_at`

// RecentSessions returns the latest sessions of a mode, newest first.
// An empty gameID matches every mode.
func (s *Store) RecentSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
}

// BestSessions returns the highest scoring sessions of a mode.
// An empty gameID matches every mode.
func (s *Store) BestSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY earned DESC, id ASC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]Session, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			sess      Session
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(
			&sess.ID, &sess.GameID, &sess.Outcome, &ticks, &sess.Resources, &sess.Lives,
			&sess.TowersBuilt, &sess.Spawned, &sess.Defeated, &sess.Earned, &sess.Spent,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Ticks = uint64(ticks)
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// HighScore returns the best score of a mode, or 0 if it was never played.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(earned) FROM sessions WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates the sessions of one mode.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'win'), 0),
		        COALESCE(SUM(outcome = 'loss'), 0),
		        COALESCE(MAX(earned), 0),
		        COALESCE(AVG(earned), 0)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Sessions, &stats.Wins, &stats.Losses, &stats.BestScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearSessions deletes every session of a mode.
func (s *Store) ClearSessions(gameID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the string form SQLite may return.
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
