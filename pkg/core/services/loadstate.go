package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/space-allocator/pkg/core/model"
	"github.com/jakechorley/space-allocator/pkg/core/registry"
	"github.com/jakechorley/space-allocator/pkg/db"
)

// MergeResult separates what the import did so the caller can render a
// diff-style report.
type MergeResult struct {
	LoadedOffices      []*model.Room
	LoadedLivingSpaces []*model.Room
	SkippedRooms       []db.RoomRecord

	LoadedFellows   []*model.Person
	LoadedStaff     []*model.Person
	ModifiedFellows []*model.Person
	ModifiedStaff   []*model.Person
	SkippedPeople   []db.PersonRecord
}

// LoadState reads the named store and merges its rooms and people into the
// registry by identity (room name, person id). Existing entities are never
// silently overwritten or duplicated: colliding rooms are skipped, people
// with a same-role id collision are updated in place, people with an
// other-role id collision are skipped (role is immutable by id).
func LoadState(ctx context.Context, reg *registry.Registry, provider db.Provider, logger *zap.Logger, name string) (*MergeResult, error) {
	target, err := provider.Resolve(name)
	if err != nil {
		return nil, err
	}

	exists, err := provider.Exists(ctx, target)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", db.ErrStoreNotFound, target.Name)
	}

	store, err := provider.Open(ctx, target)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	empty, err := store.IsEmpty(ctx)
	if err != nil {
		return nil, err
	}
	if empty {
		return nil, fmt.Errorf("%w: %q", db.ErrEmptyStore, target.Name)
	}

	rooms, err := store.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	people, err := store.People(ctx)
	if err != nil {
		return nil, err
	}

	result := &MergeResult{}
	mergeRooms(reg, logger, rooms, result)
	mergePeople(reg, logger, people, result)

	logger.Info("State loaded",
		zap.String("store", target.Name),
		zap.Int("loaded_rooms", len(result.LoadedOffices)+len(result.LoadedLivingSpaces)),
		zap.Int("skipped_rooms", len(result.SkippedRooms)),
		zap.Int("loaded_people", len(result.LoadedFellows)+len(result.LoadedStaff)),
		zap.Int("modified_people", len(result.ModifiedFellows)+len(result.ModifiedStaff)),
		zap.Int("skipped_people", len(result.SkippedPeople)))
	return result, nil
}

// mergeRooms adds stored rooms that do not collide with an existing name in
// either category.
func mergeRooms(reg *registry.Registry, logger *zap.Logger, rooms []db.RoomRecord, result *MergeResult) {
	for _, record := range rooms {
		kind, err := model.ParseRoomKind(record.Type)
		if err != nil {
			logger.Warn("Skipping room with unknown type",
				zap.String("name", record.Name), zap.String("type", record.Type))
			result.SkippedRooms = append(result.SkippedRooms, record)
			continue
		}

		room := model.NewRoom(record.Name, kind)
		if err := reg.AdoptRoom(room); err != nil {
			logger.Info("Skipping duplicate room", zap.String("name", record.Name))
			result.SkippedRooms = append(result.SkippedRooms, record)
			continue
		}
		if kind == model.Office {
			result.LoadedOffices = append(result.LoadedOffices, room)
		} else {
			result.LoadedLivingSpaces = append(result.LoadedLivingSpaces, room)
		}
	}
}

// mergePeople reconciles stored people into the registry by id.
func mergePeople(reg *registry.Registry, logger *zap.Logger, people []db.PersonRecord, result *MergeResult) {
	for _, record := range people {
		role, err := model.ParseRole(record.Role)
		if err != nil {
			logger.Warn("Skipping person with unknown role",
				zap.Int("id", record.ID), zap.String("role", record.Role))
			result.SkippedPeople = append(result.SkippedPeople, record)
			continue
		}

		existing, findErr := reg.FindPerson(record.ID)
		if findErr == nil {
			if existing.Role != role {
				logger.Info("Skipping person: id already held by the other role",
					zap.Int("id", record.ID), zap.String("role", record.Role))
				result.SkippedPeople = append(result.SkippedPeople, record)
				continue
			}
			if updatePerson(reg, existing, record) {
				if role == model.Fellow {
					result.ModifiedFellows = append(result.ModifiedFellows, existing)
				} else {
					result.ModifiedStaff = append(result.ModifiedStaff, existing)
				}
			}
			continue
		}

		person := model.NewPerson(record.ID, record.FirstName, record.LastName, role)
		applyRooms(reg, person, record)
		if role == model.Fellow {
			person.WantsAccommodation = record.WantsAccommodation != 0
		}
		if err := reg.AdoptPerson(person); err != nil {
			result.SkippedPeople = append(result.SkippedPeople, record)
			continue
		}
		if role == model.Fellow {
			result.LoadedFellows = append(result.LoadedFellows, person)
		} else {
			result.LoadedStaff = append(result.LoadedStaff, person)
		}
	}
}

// updatePerson overwrites the mutable fields of an existing person from the
// stored record and reports whether anything actually changed.
func updatePerson(reg *registry.Registry, person *model.Person, record db.PersonRecord) bool {
	changed := false

	firstName := model.NormalizeName(record.FirstName)
	if person.FirstName != firstName {
		person.FirstName = firstName
		changed = true
	}
	lastName := model.NormalizeName(record.LastName)
	if person.LastName != lastName {
		person.LastName = lastName
		changed = true
	}

	office := resolveRoom(reg, record.AllocatedOffice)
	if person.Office() != office {
		if person.AssignOffice(office) == nil {
			changed = true
		}
	}
	if person.Role == model.Fellow {
		livingSpace := resolveRoom(reg, record.AllocatedLivingSpace)
		if person.LivingSpace() != livingSpace {
			if person.AssignLivingSpace(livingSpace) == nil {
				changed = true
			}
		}
		wants := record.WantsAccommodation != 0
		if person.WantsAccommodation != wants {
			person.WantsAccommodation = wants
			changed = true
		}
	}
	return changed
}

// applyRooms resolves stored room names and assigns them to a freshly
// constructed person. Unresolved names are tolerated as nil references.
func applyRooms(reg *registry.Registry, person *model.Person, record db.PersonRecord) {
	if office := resolveRoom(reg, record.AllocatedOffice); office != nil {
		_ = person.AssignOffice(office)
	}
	if person.Role == model.Fellow {
		if livingSpace := resolveRoom(reg, record.AllocatedLivingSpace); livingSpace != nil {
			_ = person.AssignLivingSpace(livingSpace)
		}
	}
}

func resolveRoom(reg *registry.Registry, name *string) *model.Room {
	if name == nil || *name == "" {
		return nil
	}
	room, err := reg.FindRoom(*name)
	if err != nil {
		return nil
	}
	return room
}
