// Package postgres is the alternate store backend. Store names resolve to
// schemas inside one database, so several named stores can share a server.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakechorley/space-allocator/pkg/db"
)

// Provider resolves store names to schemas on one connection pool.
type Provider struct {
	pool     *pgxpool.Pool
	reserved map[string]bool
}

// NewProvider connects to the database and verifies the connection.
func NewProvider(ctx context.Context, connString string, reserved []string) (*Provider, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	set := make(map[string]bool, len(reserved))
	for _, name := range reserved {
		set[name] = true
	}
	return &Provider{pool: pool, reserved: set}, nil
}

// Close closes the connection pool.
func (p *Provider) Close() {
	p.pool.Close()
}

// Resolve validates the name and maps it to a schema.
func (p *Provider) Resolve(name string) (db.Target, error) {
	reserved := p.reserved[name]
	if !reserved {
		if err := db.ValidateStoreName(name); err != nil {
			return db.Target{}, err
		}
	}
	return db.Target{Name: name, Path: schemaName(name), Reserved: reserved}, nil
}

// Exists reports whether the target schema is present.
func (p *Provider) Exists(ctx context.Context, target db.Target) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.schemata WHERE schema_name = $1
		)`, target.Path).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check schema: %w", err)
	}
	return exists, nil
}

// Open returns a store bound to the target schema. The schema itself is
// created by Init; opening a missing schema is the caller's existence check
// to make.
func (p *Provider) Open(ctx context.Context, target db.Target) (db.Store, error) {
	return &Store{pool: p.pool, schema: target.Path}, nil
}

// schemaName maps a store name onto a valid schema identifier. Characters
// outside [a-z0-9_] become underscores; names never start with a digit.
func schemaName(name string) string {
	out := make([]rune, 0, len(name)+6)
	out = append(out, []rune("store_")...)
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

// Store persists registry state in one schema.
type Store struct {
	pool   *pgxpool.Pool
	schema string
}

// Init creates the schema and its tables if missing.
func (s *Store) Init(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, s.schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.rooms (
			name TEXT PRIMARY KEY,
			type TEXT
		)`, s.schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.people (
			id INTEGER PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			role TEXT,
			allocated_office_space TEXT,
			allocated_living_space TEXT,
			wants_accommodation INTEGER DEFAULT 0
		)`, s.schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.snapshots (
			id TEXT PRIMARY KEY,
			saved_at TIMESTAMPTZ NOT NULL
		)`, s.schema),
	}
	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}

// UpsertRooms writes rooms with insert-or-replace semantics.
func (s *Store) UpsertRooms(ctx context.Context, rooms []db.RoomRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.rooms (name, type) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET type = EXCLUDED.type`, s.schema)
	for _, room := range rooms {
		if _, err := s.pool.Exec(ctx, query, room.Name, room.Type); err != nil {
			return fmt.Errorf("failed to upsert room %q: %w", room.Name, err)
		}
	}
	return nil
}

// UpsertPeople writes people with insert-or-replace semantics.
func (s *Store) UpsertPeople(ctx context.Context, people []db.PersonRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.people
		(id, first_name, last_name, role, allocated_office_space, allocated_living_space, wants_accommodation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			role = EXCLUDED.role,
			allocated_office_space = EXCLUDED.allocated_office_space,
			allocated_living_space = EXCLUDED.allocated_living_space,
			wants_accommodation = EXCLUDED.wants_accommodation`, s.schema)
	for _, person := range people {
		_, err := s.pool.Exec(ctx, query,
			person.ID, person.FirstName, person.LastName, person.Role,
			person.AllocatedOffice, person.AllocatedLivingSpace, person.WantsAccommodation)
		if err != nil {
			return fmt.Errorf("failed to upsert person %d: %w", person.ID, err)
		}
	}
	return nil
}

// RecordSnapshot tags the export in the snapshots table.
func (s *Store) RecordSnapshot(ctx context.Context, snapshot db.SnapshotRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.snapshots (id, saved_at) VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING`, s.schema)
	if _, err := s.pool.Exec(ctx, query, snapshot.ID, snapshot.SavedAt.UTC()); err != nil {
		return fmt.Errorf("failed to record snapshot: %w", err)
	}
	return nil
}

// Rooms reads every stored room.
func (s *Store) Rooms(ctx context.Context) ([]db.RoomRecord, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf(`SELECT name, type FROM %s.rooms`, s.schema))
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []db.RoomRecord
	for rows.Next() {
		var room db.RoomRecord
		if err := rows.Scan(&room.Name, &room.Type); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rooms: %w", err)
	}
	return rooms, nil
}

// People reads every stored person.
func (s *Store) People(ctx context.Context) ([]db.PersonRecord, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, first_name, last_name, role,
		       allocated_office_space, allocated_living_space, wants_accommodation
		FROM %s.people`, s.schema))
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	var people []db.PersonRecord
	for rows.Next() {
		var person db.PersonRecord
		if err := rows.Scan(&person.ID, &person.FirstName, &person.LastName, &person.Role,
			&person.AllocatedOffice, &person.AllocatedLivingSpace, &person.WantsAccommodation); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating people: %w", err)
	}
	return people, nil
}

// IsEmpty reports whether the schema's data tables are missing.
func (s *Store) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = $1 AND table_name IN ('rooms', 'people')`, s.schema).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to inspect store tables: %w", err)
	}
	return count == 0, nil
}

// Close is a no-op; the provider owns the connection pool.
func (s *Store) Close() error {
	return nil
}
