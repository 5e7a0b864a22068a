// Package registry owns the in-memory collections of rooms and people and
// the operations that grow them. A Registry is instance-owned state passed
// explicitly by the caller; there are no shared globals.
package registry

import (
	"fmt"
	"strings"
	"time"

	"github.com/jakechorley/space-allocator/pkg/core/allocator"
	"github.com/jakechorley/space-allocator/pkg/core/model"
	"github.com/jakechorley/space-allocator/pkg/utils/random"
)

// personIDSpace bounds randomly generated person ids
const personIDSpace = 100000

// Registry holds the four ordered collections. Insertion order is
// preserved; uniqueness is enforced by the creation operations, not by the
// collection types.
type Registry struct {
	Offices      []*model.Room
	LivingSpaces []*model.Room
	Fellows      []*model.Person
	Staff        []*model.Person

	rng allocator.Source
}

// New creates an empty registry. A nil source gets a PCG seeded from
// crypto/rand; tests pass a fixed-seed source for determinism.
func New(src allocator.Source) *Registry {
	if src == nil {
		seed, err := random.NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		src = random.NewSource(seed)
	}
	return &Registry{rng: src}
}

// CreateRooms creates one room per requested name. Requested names are
// de-duplicated (order preserved) before processing. The whole call fails
// on the first collision against an existing room, but rooms created
// earlier in the same call remain created.
func (r *Registry) CreateRooms(names []string, kind model.RoomKind) ([]*model.Room, error) {
	if len(names) == 0 {
		return nil, model.ErrNoRoomName
	}

	created := make([]*model.Room, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		normalized := model.NormalizeName(name)
		key := strings.ToLower(normalized)
		if seen[key] {
			continue
		}
		seen[key] = true

		if existing, err := r.FindRoom(name); err == nil {
			return created, fmt.Errorf("%w: %q", model.ErrDuplicateRoom, existing.Name)
		}

		room := model.NewRoom(name, kind)
		r.appendRoom(room)
		created = append(created, room)
	}
	return created, nil
}

// AddPersonResult reports what happened during AddPerson, including which
// rooms were automatically assigned. Nil room fields mean no eligible room
// was available, which is informational, not an error.
type AddPersonResult struct {
	Person      *model.Person
	Office      *model.Room
	LivingSpace *model.Room
}

// AddPerson creates a person, appends them to the matching collection and
// attempts a random office allocation. Fellows who want accommodation also
// get a random living-space attempt; if none is available the want stays
// recorded.
func (r *Registry) AddPerson(firstName, lastName, roleToken string, wantsAccommodation bool) (*AddPersonResult, error) {
	role, err := model.ParseRole(roleToken)
	if err != nil {
		return nil, err
	}

	person := model.NewPerson(r.newPersonID(), firstName, lastName, role)
	if role == model.Fellow {
		person.WantsAccommodation = wantsAccommodation
		r.Fellows = append(r.Fellows, person)
	} else {
		r.Staff = append(r.Staff, person)
	}

	result := &AddPersonResult{Person: person}
	office, err := r.RandomlyAllocate(person, model.Office)
	if err != nil {
		return nil, err
	}
	result.Office = office

	if role == model.Fellow && wantsAccommodation {
		livingSpace, err := r.RandomlyAllocate(person, model.LivingSpace)
		if err != nil {
			return nil, err
		}
		result.LivingSpace = livingSpace
	}
	return result, nil
}

// RandomlyAllocate picks a non-full room of the given kind uniformly at
// random and allocates the person to it. Returns (nil, nil) when no room of
// that kind has space, a normal outcome the caller reports informationally.
// A successful living-space allocation satisfies a Fellow's accommodation
// want.
func (r *Registry) RandomlyAllocate(person *model.Person, kind model.RoomKind) (*model.Room, error) {
	pool := r.Offices
	if kind == model.LivingSpace {
		pool = r.LivingSpaces
	}

	room := allocator.Pick(r.rng, pool)
	if room == nil {
		return nil, nil
	}
	if _, err := allocator.Allocate(person, room, true); err != nil {
		return nil, err
	}
	if kind == model.LivingSpace && person.Role == model.Fellow {
		person.WantsAccommodation = false
	}
	return room, nil
}

// AdoptRoom appends an externally constructed room, enforcing name
// uniqueness across both kinds.
func (r *Registry) AdoptRoom(room *model.Room) error {
	if existing, err := r.FindRoom(room.Name); err == nil {
		return fmt.Errorf("%w: %q", model.ErrDuplicateRoom, existing.Name)
	}
	r.appendRoom(room)
	return nil
}

// AdoptPerson appends an externally constructed person, enforcing id
// uniqueness across both roles.
func (r *Registry) AdoptPerson(person *model.Person) error {
	if _, err := r.FindPerson(person.ID); err == nil {
		return fmt.Errorf("%w: id %d", model.ErrDuplicatePerson, person.ID)
	}
	if person.Role == model.Fellow {
		r.Fellows = append(r.Fellows, person)
	} else {
		r.Staff = append(r.Staff, person)
	}
	return nil
}

func (r *Registry) appendRoom(room *model.Room) {
	if room.Kind == model.LivingSpace {
		r.LivingSpaces = append(r.LivingSpaces, room)
	} else {
		r.Offices = append(r.Offices, room)
	}
}

// newPersonID draws random ids until one is unused.
func (r *Registry) newPersonID() int {
	for {
		id := r.rng.IntN(personIDSpace)
		if _, err := r.FindPerson(id); err != nil {
			return id
		}
	}
}
