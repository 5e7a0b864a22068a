// Package sqlite is the default file-backed store. Each store name resolves
// to one database file under the configured directory.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jakechorley/space-allocator/pkg/db"
)

// Provider resolves store names to files under dir.
type Provider struct {
	dir      string
	reserved map[string]bool
}

// NewProvider creates a provider rooted at dir. Reserved names skip store
// name validation and the save-time override confirmation.
func NewProvider(dir string, reserved []string) *Provider {
	set := make(map[string]bool, len(reserved))
	for _, name := range reserved {
		set[name] = true
	}
	return &Provider{dir: dir, reserved: set}
}

// Resolve validates the name and maps it to a file path.
func (p *Provider) Resolve(name string) (db.Target, error) {
	reserved := p.reserved[name]
	if !reserved {
		if err := db.ValidateStoreName(name); err != nil {
			return db.Target{}, err
		}
	}
	return db.Target{
		Name:     name,
		Path:     filepath.Join(p.dir, name),
		Reserved: reserved,
	}, nil
}

// Exists reports whether the target's database file is present.
func (p *Provider) Exists(ctx context.Context, target db.Target) (bool, error) {
	if _, err := os.Stat(target.Path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat store file: %w", err)
	}
	return true, nil
}

// Open opens the target's database file, creating the directory if needed.
func (p *Provider) Open(ctx context.Context, target db.Target) (db.Store, error) {
	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	dsn := filepath.Clean(target.Path) + "?_journal_mode=WAL&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Store persists registry state in one SQLite database.
type Store struct {
	sqlDB *sql.DB
}

// Init creates the rooms, people and snapshots tables if missing.
func (s *Store) Init(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
			name TEXT PRIMARY KEY,
			type TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS people (
			id INTEGER PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			role TEXT,
			allocated_office_space TEXT,
			allocated_living_space TEXT,
			wants_accommodation INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			saved_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.sqlDB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// UpsertRooms writes rooms with insert-or-replace semantics.
func (s *Store) UpsertRooms(ctx context.Context, rooms []db.RoomRecord) error {
	for _, room := range rooms {
		_, err := s.sqlDB.ExecContext(ctx,
			`INSERT OR REPLACE INTO rooms (name, type) VALUES (?, ?)`,
			room.Name, room.Type)
		if err != nil {
			return fmt.Errorf("upsert room %q: %w", room.Name, err)
		}
	}
	return nil
}

// UpsertPeople writes people with insert-or-replace semantics.
func (s *Store) UpsertPeople(ctx context.Context, people []db.PersonRecord) error {
	for _, person := range people {
		_, err := s.sqlDB.ExecContext(ctx,
			`INSERT OR REPLACE INTO people
			(id, first_name, last_name, role, allocated_office_space, allocated_living_space, wants_accommodation)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			person.ID, person.FirstName, person.LastName, person.Role,
			person.AllocatedOffice, person.AllocatedLivingSpace, person.WantsAccommodation)
		if err != nil {
			return fmt.Errorf("upsert person %d: %w", person.ID, err)
		}
	}
	return nil
}

// RecordSnapshot tags the export in the snapshots table.
func (s *Store) RecordSnapshot(ctx context.Context, snapshot db.SnapshotRecord) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshots (id, saved_at) VALUES (?, ?)`,
		snapshot.ID, snapshot.SavedAt.UTC().Format("2006-01-02T15:04:05Z07:00"))
	if err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	return nil
}

// Rooms reads every stored room.
func (s *Store) Rooms(ctx context.Context) ([]db.RoomRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name, type FROM rooms`)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []db.RoomRecord
	for rows.Next() {
		var room db.RoomRecord
		if err := rows.Scan(&room.Name, &room.Type); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}
	return rooms, nil
}

// People reads every stored person.
func (s *Store) People(ctx context.Context) ([]db.PersonRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, first_name, last_name, role,
		       allocated_office_space, allocated_living_space, wants_accommodation
		FROM people`)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	var people []db.PersonRecord
	for rows.Next() {
		var person db.PersonRecord
		if err := rows.Scan(&person.ID, &person.FirstName, &person.LastName, &person.Role,
			&person.AllocatedOffice, &person.AllocatedLivingSpace, &person.WantsAccommodation); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate people: %w", err)
	}
	return people, nil
}

// IsEmpty reports whether neither data table exists yet.
func (s *Store) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	err := s.sqlDB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name IN ('rooms', 'people')`).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("inspect store tables: %w", err)
	}
	return count == 0, nil
}

// Close closes the database file.
func (s *Store) Close() error {
	return s.sqlDB.Close()
}
