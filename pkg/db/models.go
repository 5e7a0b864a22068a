package db

import "time"

// RoomRecord is the persisted shape of a room.
type RoomRecord struct {
	Name string
	Type string
}

// PersonRecord is the persisted shape of a person. Room references are
// stored by room name; nil means unallocated. WantsAccommodation is stored
// as 0 or 1.
type PersonRecord struct {
	ID                   int
	FirstName            string
	LastName             string
	Role                 string
	AllocatedOffice      *string
	AllocatedLivingSpace *string
	WantsAccommodation   int
}

// SnapshotRecord tags one export with an id and timestamp.
type SnapshotRecord struct {
	ID      string
	SavedAt time.Time
}
