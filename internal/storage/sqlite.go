package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	logger  *zap.Logger
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		logger:  logger,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newRef() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS people (
		id          INTEGER PRIMARY KEY,
		name        TEXT NOT NULL,
		gender      TEXT NOT NULL DEFAULT '',
		birth_date  TEXT NOT NULL DEFAULT '',
		death_date  TEXT NOT NULL DEFAULT '',
		birth_place TEXT NOT NULL DEFAULT '',
		bio         TEXT NOT NULL DEFAULT '',
		events      TEXT NOT NULL DEFAULT '',
		audio_ref   TEXT NOT NULL DEFAULT '',
		video_ref   TEXT NOT NULL DEFAULT '',
		photos      TEXT,
		children    TEXT,
		spouses     TEXT,
		pos         INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_people_pos ON people(pos);

	CREATE TABLE IF NOT EXISTS blobs (
		ref        TEXT PRIMARY KEY,
		kind       TEXT NOT NULL,
		data       BLOB NOT NULL,
		created_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save replaces the whole snapshot in one transaction, so a reader never
// sees a partially written collection.
func (s *SQLiteStore) Save(ctx context.Context, people []model.Person) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM people`); err != nil {
		return fmt.Errorf("clear people: %w", err)
	}

	for pos, p := range people {
		photos, _ := json.Marshal(p.Photos)
		children, _ := json.Marshal(p.Children)
		spouses, _ := json.Marshal(p.Spouses)
		_, err := tx.ExecContext(ctx,
			`INSERT INTO people (id, name, gender, birth_date, death_date, birth_place,
			                     bio, events, audio_ref, video_ref, photos, children, spouses, pos)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			int(p.ID), p.Name, string(p.Gender), p.BirthDate.String(), p.DeathDate.String(),
			p.BirthPlace, p.Bio, p.Events, p.AudioRef, p.VideoRef,
			string(photos), string(children), string(spouses), pos)
		if err != nil {
			return fmt.Errorf("insert person %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Debug("snapshot saved", zap.Int("people", len(people)))
	return nil
}

// Load returns the saved snapshot in its original order, or nil when the
// database holds no people.
func (s *SQLiteStore) Load(ctx context.Context) ([]model.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, gender, birth_date, death_date, birth_place,
		        bio, events, audio_ref, video_ref, photos, children, spouses
		 FROM people ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []model.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func scanPerson(rows *sql.Rows) (model.Person, error) {
	var p model.Person
	var id int
	var gender, birth, death string
	var photos, children, spouses sql.NullString

	err := rows.Scan(&id, &p.Name, &gender, &birth, &death, &p.BirthPlace,
		&p.Bio, &p.Events, &p.AudioRef, &p.VideoRef, &photos, &children, &spouses)
	if err != nil {
		return p, err
	}

	p.ID = model.PersonID(id)
	p.Gender = model.Gender(gender)
	// Dates were written by Date.String, so a parse failure means hand
	// edited data; treat it as unknown rather than failing the load.
	p.BirthDate, _ = model.ParseDate(birth)
	p.DeathDate, _ = model.ParseDate(death)
	if photos.Valid {
		json.Unmarshal([]byte(photos.String), &p.Photos)
	}
	if children.Valid {
		json.Unmarshal([]byte(children.String), &p.Children)
	}
	if spouses.Valid {
		json.Unmarshal([]byte(spouses.String), &p.Spouses)
	}
	return p, nil
}

// PutBlob stores media bytes and returns the new reference id.
func (s *SQLiteStore) PutBlob(ctx context.Context, kind string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty blob")
	}
	ref := s.newRef()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blobs (ref, kind, data, created_at) VALUES (?, ?, ?, ?)`,
		ref, kind, data, now)
	if err != nil {
		return "", fmt.Errorf("insert blob: %w", err)
	}
	s.logger.Debug("blob stored", zap.String("ref", ref), zap.String("kind", kind), zap.Int("bytes", len(data)))
	return ref, nil
}

// GetBlob returns the bytes behind a reference id.
func (s *SQLiteStore) GetBlob(ctx context.Context, ref string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM blobs WHERE ref = ?`, ref).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("blob not found: %s", ref)
	}
	return data, err
}

// DeleteBlob removes a stored blob. Deleting a missing ref is a no-op.
func (s *SQLiteStore) DeleteBlob(ctx context.Context, ref string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE ref = ?`, ref)
	return err
}

// Close closes the store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
