package schedule

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielpatrickdp/fleet-traffic/internal/trajectory"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS schedule_entries (
	entry_id        TEXT PRIMARY KEY,
	map_name        TEXT NOT NULL,
	created_at      TEXT NOT NULL,
	trajectory_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_map ON schedule_entries(map_name);
`

// #endregion schema

// #region store
// Store is a SQLite-backed schedule. It satisfies the same Viewer/Writer
// contract as the in-memory Database, so committed plans survive process
// restarts and remain obstacles for later planning runs.
type Store struct {
	db *sql.DB
}

// NewStore opens the database at path and runs migrations.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open schedule db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for inspection tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region insert
// Insert commits a trajectory and returns its entry id.
func (s *Store) Insert(t *trajectory.Trajectory) (string, error) {
	data, err := EncodeTrajectory(t)
	if err != nil {
		return "", fmt.Errorf("insert schedule entry: %w", err)
	}
	id := uuid.New().String()
	_, err = s.db.Exec(
		`INSERT INTO schedule_entries (entry_id, map_name, created_at, trajectory_json)
		 VALUES (?, ?, ?, ?)`,
		id, t.MapName(), time.Now().UTC().Format(time.RFC3339Nano), string(data),
	)
	if err != nil {
		return "", fmt.Errorf("insert schedule entry: %w", err)
	}
	return id, nil
}

// #endregion insert

// #region query
// Query decodes every committed trajectory and returns those matching the
// predicate, in commit order.
func (s *Store) Query(pred Predicate) []*trajectory.Trajectory {
	rows, err := s.db.Query(
		`SELECT trajectory_json FROM schedule_entries ORDER BY created_at, entry_id`,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []*trajectory.Trajectory
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			continue
		}
		t, err := DecodeTrajectory([]byte(data))
		if err != nil {
			continue
		}
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// #endregion query

// #region entries
// EntryInfo summarizes one committed schedule entry.
type EntryInfo struct {
	ID        string
	MapName   string
	CreatedAt time.Time
	Segments  int
}

// Entries returns metadata for the most recent entries, newest first.
func (s *Store) Entries(limit int) ([]EntryInfo, error) {
	rows, err := s.db.Query(
		`SELECT entry_id, map_name, created_at, trajectory_json
		 FROM schedule_entries ORDER BY created_at DESC, entry_id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}
	defer rows.Close()

	var infos []EntryInfo
	for rows.Next() {
		var info EntryInfo
		var createdStr, data string
		if err := rows.Scan(&info.ID, &info.MapName, &createdStr, &data); err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		if t, err := DecodeTrajectory([]byte(data)); err == nil {
			info.Segments = t.Size()
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// #endregion entries
