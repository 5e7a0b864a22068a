package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/space-allocator/pkg/core/model"
	"github.com/jakechorley/space-allocator/pkg/utils/random"
)

func newTestRegistry() *Registry {
	return New(random.NewSource(42))
}

func TestCreateRooms_EmptyInput(t *testing.T) {
	reg := newTestRegistry()

	_, err := reg.CreateRooms(nil, model.Office)

	assert.ErrorIs(t, err, model.ErrNoRoomName)
}

func TestCreateRooms_CreatesAndNormalizes(t *testing.T) {
	reg := newTestRegistry()

	created, err := reg.CreateRooms([]string{"camelot", "val halla"}, model.Office)

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "Camelot", created[0].Name)
	assert.Equal(t, "Valhalla", created[1].Name)
	assert.Len(t, reg.Offices, 2)
}

func TestCreateRooms_DeduplicatesRequestedNames(t *testing.T) {
	reg := newTestRegistry()

	created, err := reg.CreateRooms([]string{"Camelot", "camelot", "CAMELOT "}, model.Office)

	require.NoError(t, err)
	assert.Len(t, created, 1)
	assert.Len(t, reg.Offices, 1)
}

func TestCreateRooms_CaseInsensitiveCollision(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.CreateRooms([]string{"Hogwarts"}, model.Office)
	require.NoError(t, err)

	_, err = reg.CreateRooms([]string{"hogwarts"}, model.LivingSpace)

	assert.ErrorIs(t, err, model.ErrDuplicateRoom)
	assert.Len(t, reg.AllRooms(), 1)
}

func TestCreateRooms_EarlierRoomsSurviveCollision(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.CreateRooms([]string{"Camelot"}, model.Office)
	require.NoError(t, err)

	created, err := reg.CreateRooms([]string{"Valhalla", "Camelot", "Krypton"}, model.Office)

	assert.ErrorIs(t, err, model.ErrDuplicateRoom)
	// Valhalla was created before the collision and stays
	assert.Len(t, created, 1)
	assert.Equal(t, "Valhalla", created[0].Name)
	assert.Len(t, reg.Offices, 2)
}

func TestAddPerson_InvalidRole(t *testing.T) {
	reg := newTestRegistry()

	_, err := reg.AddPerson("Jane", "Kay", "manager", false)

	assert.ErrorIs(t, err, model.ErrInvalidPersonType)
	assert.Empty(t, reg.AllPeople())
}

func TestAddPerson_NoOfficesIsInformational(t *testing.T) {
	reg := newTestRegistry()

	result, err := reg.AddPerson("Jane", "Kay", "fellow", false)

	require.NoError(t, err)
	assert.Nil(t, result.Office)
	assert.Nil(t, result.Person.Office())
	assert.Len(t, reg.Fellows, 1)
}

func TestAddPerson_FellowGetsOfficeAndLivingSpace(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.CreateRooms([]string{"Hogwarts"}, model.Office)
	require.NoError(t, err)
	_, err = reg.CreateRooms([]string{"Python"}, model.LivingSpace)
	require.NoError(t, err)

	result, err := reg.AddPerson("Jake", "Surname", "fellow", true)

	require.NoError(t, err)
	require.NotNil(t, result.Person.Office())
	require.NotNil(t, result.Person.LivingSpace())
	assert.Equal(t, "Hogwarts", result.Person.Office().Name)
	assert.Equal(t, "Python", result.Person.LivingSpace().Name)
	// The accommodation want has been satisfied
	assert.False(t, result.Person.WantsAccommodation)
}

func TestAddPerson_WantSurvivesWhenNoLivingSpace(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.CreateRooms([]string{"Hogwarts"}, model.Office)
	require.NoError(t, err)

	result, err := reg.AddPerson("Jake", "Surname", "f", true)

	require.NoError(t, err)
	assert.Nil(t, result.LivingSpace)
	assert.True(t, result.Person.WantsAccommodation)
}

func TestAddPerson_SeventhPersonGetsNoOffice(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.CreateRooms([]string{"Hogwarts"}, model.Office)
	require.NoError(t, err)

	for i := 0; i < model.OfficeCapacity; i++ {
		result, err := reg.AddPerson("Person", "N", "staff", false)
		require.NoError(t, err)
		require.NotNil(t, result.Office)
	}

	result, err := reg.AddPerson("Late", "Arrival", "staff", false)

	require.NoError(t, err)
	assert.Nil(t, result.Office)
	assert.Nil(t, result.Person.Office())
	assert.Equal(t, model.OfficeCapacity, reg.Offices[0].Occupants())
}

func TestAddPerson_StaffNeverGetLivingSpace(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.CreateRooms([]string{"Python"}, model.LivingSpace)
	require.NoError(t, err)

	result, err := reg.AddPerson("Kate", "Mitch", "staff", true)

	require.NoError(t, err)
	assert.Nil(t, result.LivingSpace)
	assert.Nil(t, result.Person.LivingSpace())
	assert.Equal(t, 0, reg.LivingSpaces[0].Occupants())
}

func TestAddPerson_UniqueIDs(t *testing.T) {
	reg := newTestRegistry()

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		result, err := reg.AddPerson("Person", "N", "fellow", false)
		require.NoError(t, err)
		assert.False(t, seen[result.Person.ID])
		seen[result.Person.ID] = true
	}
}

func TestFindRoom_CaseInsensitive(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.CreateRooms([]string{"Hogwarts"}, model.Office)
	require.NoError(t, err)

	room, err := reg.FindRoom("HOGWARTS")

	require.NoError(t, err)
	assert.Equal(t, "Hogwarts", room.Name)
}

func TestFindRoom_NotFound(t *testing.T) {
	reg := newTestRegistry()

	_, err := reg.FindRoom("Nowhere")

	assert.ErrorIs(t, err, model.ErrRoomNotFound)
}

func TestFindPerson_NotFound(t *testing.T) {
	reg := newTestRegistry()

	_, err := reg.FindPerson(12345)

	assert.ErrorIs(t, err, model.ErrPersonNotFound)
}

func TestQueries_ClassifyPeople(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.CreateRooms([]string{"Hogwarts"}, model.Office)
	require.NoError(t, err)
	_, err = reg.CreateRooms([]string{"Python"}, model.LivingSpace)
	require.NoError(t, err)

	both, err := reg.AddPerson("Jake", "Surname", "fellow", true)
	require.NoError(t, err)
	officeOnly, err := reg.AddPerson("Jane", "Kay", "fellow", false)
	require.NoError(t, err)
	staff, err := reg.AddPerson("Kate", "Mitch", "staff", false)
	require.NoError(t, err)

	assert.Equal(t, []*model.Person{both.Person}, reg.FellowsWithBoth())
	assert.Equal(t, []*model.Person{staff.Person}, reg.AllocatedStaff())
	assert.Empty(t, reg.UnallocatedStaff())
	assert.Empty(t, reg.FellowsWithNeither())
	// officeOnly has an office but never wanted accommodation
	assert.Empty(t, reg.FellowsWithOfficeOnly())
	assert.NotNil(t, officeOnly.Person.Office())
}

func TestRoomMembers(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.CreateRooms([]string{"Hogwarts"}, model.Office)
	require.NoError(t, err)

	added, err := reg.AddPerson("Jane", "Kay", "fellow", false)
	require.NoError(t, err)

	members, err := reg.RoomMembers("hogwarts")
	require.NoError(t, err)
	assert.Equal(t, []*model.Person{added.Person}, members)
}

func TestAdoptRoom_RejectsDuplicate(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.CreateRooms([]string{"Hogwarts"}, model.Office)
	require.NoError(t, err)

	err = reg.AdoptRoom(model.NewRoom("hogwarts", model.LivingSpace))

	assert.ErrorIs(t, err, model.ErrDuplicateRoom)
}

func TestAdoptPerson_RejectsDuplicateID(t *testing.T) {
	reg := newTestRegistry()
	require.NoError(t, reg.AdoptPerson(model.NewPerson(7, "Jane", "Kay", model.Fellow)))

	err := reg.AdoptPerson(model.NewPerson(7, "Kate", "Mitch", model.Staff))

	assert.ErrorIs(t, err, model.ErrDuplicatePerson)
}
