package model

import (
	"fmt"
	"strings"
)

// RoomKind discriminates the two room variants.
type RoomKind string

const (
	Office      RoomKind = "office"
	LivingSpace RoomKind = "living-space"
)

// Fixed capacities per room kind
const (
	OfficeCapacity      = 6
	LivingSpaceCapacity = 4
)

// Room is a capacity-limited space people can be allocated to. Occupant
// counts are maintained exclusively by the Person mutators; nothing else
// may touch them.
type Room struct {
	Name      string
	Kind      RoomKind
	occupants int
}

// NewRoom creates a room with a normalized display name.
func NewRoom(name string, kind RoomKind) *Room {
	return &Room{Name: NormalizeName(name), Kind: kind}
}

// Capacity returns the maximum number of occupants for this room's kind.
func (r *Room) Capacity() int {
	if r.Kind == LivingSpace {
		return LivingSpaceCapacity
	}
	return OfficeCapacity
}

// Occupants returns the current occupant count.
func (r *Room) Occupants() int {
	return r.occupants
}

// IsFull returns true if the room has reached its capacity.
func (r *Room) IsFull() bool {
	return r.occupants >= r.Capacity()
}

// ParseRoomKind maps a user-supplied room category token to a RoomKind.
// Unrecognized tokens are an error, never a silent default.
func ParseRoomKind(token string) (RoomKind, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "office", "o":
		return Office, nil
	case "living-space", "living_space", "ls", "l":
		return LivingSpace, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRoomType, token)
	}
}

// NormalizeName strips all whitespace from a name and title-cases it,
// unless the name is fully uppercase, which is preserved as written.
func NormalizeName(name string) string {
	joined := strings.Join(strings.Fields(name), "")
	if joined == "" {
		return joined
	}
	if joined == strings.ToUpper(joined) {
		return joined
	}
	runes := []rune(joined)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}
