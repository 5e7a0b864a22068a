package model

import "errors"

// Categorical errors for domain-rule violations. Callers classify with
// errors.Is; wrapped messages carry the offending name, id or token.
var (
	ErrRoomNotFound               = errors.New("room does not exist")
	ErrPersonNotFound             = errors.New("person does not exist")
	ErrDuplicateRoom              = errors.New("cannot create a duplicate room")
	ErrDuplicatePerson            = errors.New("cannot create a duplicate person")
	ErrInvalidPersonType          = errors.New("invalid person type")
	ErrInvalidRoomType            = errors.New("invalid room type")
	ErrInvalidAccommodationOption = errors.New("invalid accommodation option")
	ErrNoRoomName                 = errors.New("no room name was provided")
	ErrStaffLivingSpace           = errors.New("cannot allocate a living space to a staff member")
	ErrRoomFull                   = errors.New("the room is fully occupied")
)
