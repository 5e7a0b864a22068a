package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName_TitleCases(t *testing.T) {
	assert.Equal(t, "Hogwarts", NormalizeName("hogwarts"))
	assert.Equal(t, "Hogwarts", NormalizeName("  hog warts "))
	assert.Equal(t, "Camelot", NormalizeName("caMELot"))
}

func TestNormalizeName_PreservesAllUppercase(t *testing.T) {
	assert.Equal(t, "HOGWARTS", NormalizeName("HOGWARTS"))
	assert.Equal(t, "HOGWARTS", NormalizeName("HOG WARTS"))
}

func TestRoomCapacities(t *testing.T) {
	office := NewRoom("Camelot", Office)
	livingSpace := NewRoom("Python", LivingSpace)

	assert.Equal(t, 6, office.Capacity())
	assert.Equal(t, 4, livingSpace.Capacity())
	assert.Equal(t, 0, office.Occupants())
}

func TestParseRoomKind(t *testing.T) {
	kind, err := ParseRoomKind("Office")
	require.NoError(t, err)
	assert.Equal(t, Office, kind)

	kind, err = ParseRoomKind("ls")
	require.NoError(t, err)
	assert.Equal(t, LivingSpace, kind)

	_, err = ParseRoomKind("warehouse")
	assert.ErrorIs(t, err, ErrInvalidRoomType)
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("FELLOW")
	require.NoError(t, err)
	assert.Equal(t, Fellow, role)

	role, err = ParseRole("s")
	require.NoError(t, err)
	assert.Equal(t, Staff, role)

	_, err = ParseRole("manager")
	assert.ErrorIs(t, err, ErrInvalidPersonType)
}

func TestParseAccommodation(t *testing.T) {
	wants, err := ParseAccommodation("Y")
	require.NoError(t, err)
	assert.True(t, wants)

	wants, err = ParseAccommodation("")
	require.NoError(t, err)
	assert.False(t, wants)

	_, err = ParseAccommodation("maybe")
	assert.ErrorIs(t, err, ErrInvalidAccommodationOption)
}

func TestAssignOffice_IncrementsOccupants(t *testing.T) {
	office := NewRoom("Camelot", Office)
	person := NewPerson(1, "Jane", "Kay", Fellow)

	require.NoError(t, person.AssignOffice(office))

	assert.Equal(t, office, person.Office())
	assert.Equal(t, 1, office.Occupants())
}

func TestAssignOffice_MoveKeepsCountsSymmetric(t *testing.T) {
	first := NewRoom("Camelot", Office)
	second := NewRoom("Valhalla", Office)
	person := NewPerson(1, "Jane", "Kay", Fellow)

	require.NoError(t, person.AssignOffice(first))
	require.NoError(t, person.AssignOffice(second))

	assert.Equal(t, 0, first.Occupants())
	assert.Equal(t, 1, second.Occupants())
	assert.Equal(t, second, person.Office())
}

func TestAssignOffice_ClearDecrements(t *testing.T) {
	office := NewRoom("Camelot", Office)
	person := NewPerson(1, "Jane", "Kay", Fellow)
	require.NoError(t, person.AssignOffice(office))

	require.NoError(t, person.AssignOffice(nil))

	assert.Nil(t, person.Office())
	assert.Equal(t, 0, office.Occupants())
}

func TestAssignOffice_RejectsLivingSpace(t *testing.T) {
	livingSpace := NewRoom("Python", LivingSpace)
	person := NewPerson(1, "Jane", "Kay", Fellow)

	err := person.AssignOffice(livingSpace)

	assert.ErrorIs(t, err, ErrInvalidRoomType)
	assert.Nil(t, person.Office())
	assert.Equal(t, 0, livingSpace.Occupants())
}

func TestAssignLivingSpace_RejectsStaff(t *testing.T) {
	livingSpace := NewRoom("Python", LivingSpace)
	staff := NewPerson(1, "Kate", "Mitch", Staff)

	err := staff.AssignLivingSpace(livingSpace)

	assert.ErrorIs(t, err, ErrStaffLivingSpace)
	assert.Nil(t, staff.LivingSpace())
	assert.Equal(t, 0, livingSpace.Occupants())
}

func TestNewPerson_NormalizesNames(t *testing.T) {
	person := NewPerson(7, "jane ", " kay", Fellow)

	assert.Equal(t, "Jane", person.FirstName)
	assert.Equal(t, "Kay", person.LastName)
	assert.Equal(t, "Jane Kay", person.FullName())
}
