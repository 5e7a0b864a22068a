package allocator

import (
	"fmt"

	"github.com/jakechorley/space-allocator/pkg/core/model"
)

// Outcome represents the result of an allocation attempt
type Outcome struct {
	// Person is the (possibly updated) person the attempt was made for
	Person *model.Person

	// Pending is set when the person already holds a room of the same kind
	// and the caller did not allow reallocation. No state has changed; the
	// caller decides and re-invokes with allowReallocate=true to commit.
	Pending *PendingMove
}

// PendingMove describes a reallocation awaiting confirmation
type PendingMove struct {
	Person *model.Person
	From   *model.Room
	To     *model.Room
}

func (m *PendingMove) String() string {
	return fmt.Sprintf("about to move %s from %s to %s", m.Person.FirstName, m.From.Name, m.To.Name)
}

// Allocate assigns a room to a person with capacity checking and occupancy
// bookkeeping. Validation runs before any mutation, so a failed call leaves
// both the person and the room untouched.
func Allocate(person *model.Person, room *model.Room, allowReallocate bool) (*Outcome, error) {
	if room.IsFull() {
		return nil, fmt.Errorf("%w: %q", model.ErrRoomFull, room.Name)
	}

	if person.Role == model.Staff && room.Kind == model.LivingSpace {
		return nil, model.ErrStaffLivingSpace
	}

	// A person who already holds a room of this kind needs an explicit
	// confirmation before being moved.
	if !allowReallocate {
		if from := heldRoom(person, room.Kind); from != nil {
			return &Outcome{
				Person:  person,
				Pending: &PendingMove{Person: person, From: from, To: room},
			}, nil
		}
	}

	var err error
	switch room.Kind {
	case model.Office:
		err = person.AssignOffice(room)
	case model.LivingSpace:
		err = person.AssignLivingSpace(room)
	default:
		err = fmt.Errorf("%w: %q", model.ErrInvalidRoomType, string(room.Kind))
	}
	if err != nil {
		return nil, err
	}

	return &Outcome{Person: person}, nil
}

// heldRoom returns the room of the given kind the person currently holds, if any
func heldRoom(person *model.Person, kind model.RoomKind) *model.Room {
	if kind == model.Office {
		return person.Office()
	}
	return person.LivingSpace()
}
