// Package db defines the store-neutral persistence contract: record types,
// the Store and Provider interfaces, and store-name validation. Backends
// live in pkg/sqlite and pkg/postgres.
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStoreName = errors.New("invalid characters in the store name")
	ErrStoreNotFound    = errors.New("non-existent store")
	ErrEmptyStore       = errors.New("store holds no data")
)

// disallowedNameChars may not appear in user-supplied store names
const disallowedNameChars = `~!@#$%^&*()+{}"/\:;'`

// ValidateStoreName rejects names containing disallowed characters.
func ValidateStoreName(name string) error {
	if strings.ContainsAny(name, disallowedNameChars) {
		return fmt.Errorf("%w: %q", ErrInvalidStoreName, name)
	}
	return nil
}

// Target is a resolved store location. Reserved targets bypass both name
// validation and the override confirmation.
type Target struct {
	Name     string
	Path     string
	Reserved bool
}

// Store reads and writes the rooms, people and snapshots tables of one
// target. Upserts use primary-key replace semantics.
type Store interface {
	Init(ctx context.Context) error
	UpsertRooms(ctx context.Context, rooms []RoomRecord) error
	UpsertPeople(ctx context.Context, people []PersonRecord) error
	RecordSnapshot(ctx context.Context, snapshot SnapshotRecord) error
	Rooms(ctx context.Context) ([]RoomRecord, error)
	People(ctx context.Context) ([]PersonRecord, error)
	IsEmpty(ctx context.Context) (bool, error)
	Close() error
}

// Provider maps store names to targets and opens stores. The sqlite
// provider resolves names to file paths; the postgres provider resolves
// them to schemas.
type Provider interface {
	Resolve(name string) (Target, error)
	Exists(ctx context.Context, target Target) (bool, error)
	Open(ctx context.Context, target Target) (Store, error)
}
