package registry

import (
	"fmt"
	"strings"

	"github.com/jakechorley/space-allocator/pkg/core/model"
)

// AllRooms returns offices followed by living spaces.
func (r *Registry) AllRooms() []*model.Room {
	rooms := make([]*model.Room, 0, len(r.Offices)+len(r.LivingSpaces))
	rooms = append(rooms, r.Offices...)
	return append(rooms, r.LivingSpaces...)
}

// AllPeople returns fellows followed by staff.
func (r *Registry) AllPeople() []*model.Person {
	people := make([]*model.Person, 0, len(r.Fellows)+len(r.Staff))
	people = append(people, r.Fellows...)
	return append(people, r.Staff...)
}

// FindRoom looks a room up by name, case-insensitively across both kinds.
func (r *Registry) FindRoom(name string) (*model.Room, error) {
	key := strings.ToLower(model.NormalizeName(name))
	for _, room := range r.AllRooms() {
		if strings.ToLower(room.Name) == key {
			return room, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", model.ErrRoomNotFound, name)
}

// FindPerson looks a person up by id across both roles.
func (r *Registry) FindPerson(id int) (*model.Person, error) {
	for _, person := range r.AllPeople() {
		if person.ID == id {
			return person, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", model.ErrPersonNotFound, id)
}

// AllocatedStaff returns staff holding an office.
func (r *Registry) AllocatedStaff() []*model.Person {
	var out []*model.Person
	for _, s := range r.Staff {
		if s.Office() != nil {
			out = append(out, s)
		}
	}
	return out
}

// UnallocatedStaff returns staff without an office.
func (r *Registry) UnallocatedStaff() []*model.Person {
	var out []*model.Person
	for _, s := range r.Staff {
		if s.Office() == nil {
			out = append(out, s)
		}
	}
	return out
}

// FellowsWithBoth returns fellows holding both an office and a living space.
func (r *Registry) FellowsWithBoth() []*model.Person {
	var out []*model.Person
	for _, f := range r.Fellows {
		if f.Office() != nil && f.LivingSpace() != nil {
			out = append(out, f)
		}
	}
	return out
}

// FellowsWithOfficeOnly returns fellows holding an office, no living space,
// and still wanting accommodation.
func (r *Registry) FellowsWithOfficeOnly() []*model.Person {
	var out []*model.Person
	for _, f := range r.Fellows {
		if f.Office() != nil && f.LivingSpace() == nil && f.WantsAccommodation {
			out = append(out, f)
		}
	}
	return out
}

// FellowsWithLivingOnly returns fellows holding a living space but no office.
func (r *Registry) FellowsWithLivingOnly() []*model.Person {
	var out []*model.Person
	for _, f := range r.Fellows {
		if f.LivingSpace() != nil && f.Office() == nil {
			out = append(out, f)
		}
	}
	return out
}

// FellowsWithNeither returns fellows holding no room at all.
func (r *Registry) FellowsWithNeither() []*model.Person {
	var out []*model.Person
	for _, f := range r.Fellows {
		if f.Office() == nil && f.LivingSpace() == nil {
			out = append(out, f)
		}
	}
	return out
}

// RoomMembers returns the people currently occupying the named room.
func (r *Registry) RoomMembers(name string) ([]*model.Person, error) {
	room, err := r.FindRoom(name)
	if err != nil {
		return nil, err
	}
	var out []*model.Person
	for _, person := range r.AllPeople() {
		if person.Office() == room || person.LivingSpace() == room {
			out = append(out, person)
		}
	}
	return out, nil
}
