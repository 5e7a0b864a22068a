package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/space-allocator/pkg/core/model"
	"github.com/jakechorley/space-allocator/pkg/core/registry"
	"github.com/jakechorley/space-allocator/pkg/db"
)

// SaveOptions configures an export.
type SaveOptions struct {
	// Name of the target store
	Name string

	// Override commits the export even when the target already exists.
	// Without it an existing, non-reserved target yields a pending result.
	Override bool
}

// SaveResult reports the outcome of an export.
type SaveResult struct {
	Target db.Target

	// Pending is true when the target exists and override was not set; the
	// caller confirms and re-invokes with Override to commit. Nothing was
	// written.
	Pending bool

	Rooms      int
	People     int
	SnapshotID string
}

// SaveState serializes the registry into the named store, upserting by
// primary key. Refuses when the registry is entirely empty or the store
// name carries disallowed characters. Existing non-reserved targets need
// the override flag (propose/commit, never a blocking prompt).
func SaveState(ctx context.Context, reg *registry.Registry, provider db.Provider, logger *zap.Logger, opts SaveOptions) (*SaveResult, error) {
	target, err := provider.Resolve(opts.Name)
	if err != nil {
		return nil, err
	}

	rooms := reg.AllRooms()
	people := reg.AllPeople()
	if len(rooms) == 0 && len(people) == 0 {
		return nil, ErrNothingToSave
	}

	exists, err := provider.Exists(ctx, target)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Override && !target.Reserved {
		logger.Info("Existing store needs override confirmation", zap.String("store", target.Name))
		return &SaveResult{Target: target, Pending: true}, nil
	}

	logger.Debug("Opening store", zap.String("store", target.Name), zap.String("path", target.Path))
	store, err := provider.Open(ctx, target)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	if err := store.UpsertRooms(ctx, roomRecords(rooms)); err != nil {
		return nil, err
	}
	if err := store.UpsertPeople(ctx, personRecords(people)); err != nil {
		return nil, err
	}

	snapshot := db.SnapshotRecord{ID: uuid.New().String(), SavedAt: time.Now()}
	if err := store.RecordSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	logger.Info("State saved",
		zap.String("store", target.Name),
		zap.Int("rooms", len(rooms)),
		zap.Int("people", len(people)),
		zap.String("snapshot_id", snapshot.ID))

	return &SaveResult{
		Target:     target,
		Rooms:      len(rooms),
		People:     len(people),
		SnapshotID: snapshot.ID,
	}, nil
}

func roomRecords(rooms []*model.Room) []db.RoomRecord {
	records := make([]db.RoomRecord, 0, len(rooms))
	for _, room := range rooms {
		records = append(records, db.RoomRecord{Name: room.Name, Type: string(room.Kind)})
	}
	return records
}

func personRecords(people []*model.Person) []db.PersonRecord {
	records := make([]db.PersonRecord, 0, len(people))
	for _, person := range people {
		record := db.PersonRecord{
			ID:        person.ID,
			FirstName: person.FirstName,
			LastName:  person.LastName,
			Role:      string(person.Role),
		}
		if office := person.Office(); office != nil {
			record.AllocatedOffice = &office.Name
		}
		if livingSpace := person.LivingSpace(); livingSpace != nil {
			record.AllocatedLivingSpace = &livingSpace.Name
		}
		if person.WantsAccommodation {
			record.WantsAccommodation = 1
		}
		records = append(records, record)
	}
	return records
}
