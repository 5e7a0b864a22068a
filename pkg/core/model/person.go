package model

import (
	"fmt"
	"strings"
)

// Role discriminates the two person variants.
type Role string

const (
	Fellow Role = "fellow"
	Staff  Role = "staff"
)

// Person is someone who can be allocated rooms. Fellows may hold an office
// and a living space; staff may only hold an office. Room references are
// mutated exclusively through AssignOffice and AssignLivingSpace so that
// occupant counters stay consistent with the set of people pointing at
// each room.
type Person struct {
	ID        int
	FirstName string
	LastName  string
	Role      Role

	office      *Room
	livingSpace *Room

	// WantsAccommodation is meaningful for Fellows only. It is reset to
	// false once a living space has been allocated.
	WantsAccommodation bool
}

// NewPerson creates a person with normalized names.
func NewPerson(id int, firstName, lastName string, role Role) *Person {
	return &Person{
		ID:        id,
		FirstName: NormalizeName(firstName),
		LastName:  NormalizeName(lastName),
		Role:      role,
	}
}

// FullName returns the person's display name.
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Office returns the person's allocated office, or nil.
func (p *Person) Office() *Room {
	return p.office
}

// LivingSpace returns the person's allocated living space, or nil.
func (p *Person) LivingSpace() *Room {
	return p.livingSpace
}

// AssignOffice points the person at a new office, decrementing the occupant
// count of any previously held office and incrementing the new one. A nil
// office clears the reference (decrement only).
func (p *Person) AssignOffice(office *Room) error {
	if office != nil && office.Kind != Office {
		return fmt.Errorf("%w: %q is not an office", ErrInvalidRoomType, office.Name)
	}
	if p.office != nil {
		p.office.occupants--
	}
	if office != nil {
		office.occupants++
	}
	p.office = office
	return nil
}

// AssignLivingSpace points the person at a new living space with the same
// decrement/increment discipline as AssignOffice. Staff never hold living
// spaces; the attempt is rejected, not silently ignored.
func (p *Person) AssignLivingSpace(livingSpace *Room) error {
	if p.Role == Staff {
		return ErrStaffLivingSpace
	}
	if livingSpace != nil && livingSpace.Kind != LivingSpace {
		return fmt.Errorf("%w: %q is not a living space", ErrInvalidRoomType, livingSpace.Name)
	}
	if p.livingSpace != nil {
		p.livingSpace.occupants--
	}
	if livingSpace != nil {
		livingSpace.occupants++
	}
	p.livingSpace = livingSpace
	return nil
}

// ParseRole maps a user-supplied role token to a Role. Accepts the short
// codes f and s, case-insensitive.
func ParseRole(token string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "fellow", "f":
		return Fellow, nil
	case "staff", "s":
		return Staff, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPersonType, token)
	}
}

// ParseAccommodation maps a yes/no token to a strict boolean. The empty
// token means no.
func ParseAccommodation(token string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "yes", "y":
		return true, nil
	case "no", "n", "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidAccommodationOption, token)
	}
}
