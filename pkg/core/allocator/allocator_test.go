package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/space-allocator/pkg/core/model"
	"github.com/jakechorley/space-allocator/pkg/utils/random"
)

func TestAllocate_FullRoom(t *testing.T) {
	office := model.NewRoom("Camelot", model.Office)
	for i := 0; i < model.OfficeCapacity; i++ {
		occupant := model.NewPerson(i, "Person", "N", model.Staff)
		require.NoError(t, occupant.AssignOffice(office))
	}

	person := model.NewPerson(99, "Jane", "Kay", model.Fellow)
	_, err := Allocate(person, office, false)

	assert.ErrorIs(t, err, model.ErrRoomFull)
	assert.Nil(t, person.Office())
	assert.Equal(t, model.OfficeCapacity, office.Occupants())
}

func TestAllocate_StaffLivingSpaceRejected(t *testing.T) {
	livingSpace := model.NewRoom("Python", model.LivingSpace)
	staff := model.NewPerson(1, "Kate", "Mitch", model.Staff)

	_, err := Allocate(staff, livingSpace, true)

	assert.ErrorIs(t, err, model.ErrStaffLivingSpace)
	assert.Equal(t, 0, livingSpace.Occupants())
	assert.Nil(t, staff.LivingSpace())
}

func TestAllocate_Success(t *testing.T) {
	office := model.NewRoom("Camelot", model.Office)
	person := model.NewPerson(1, "Jane", "Kay", model.Fellow)

	outcome, err := Allocate(person, office, false)

	require.NoError(t, err)
	assert.Nil(t, outcome.Pending)
	assert.Equal(t, office, person.Office())
	assert.Equal(t, 1, office.Occupants())
}

func TestAllocate_ReallocationNeedsConfirmation(t *testing.T) {
	first := model.NewRoom("Camelot", model.Office)
	second := model.NewRoom("Valhalla", model.Office)
	person := model.NewPerson(1, "Jane", "Kay", model.Fellow)
	_, err := Allocate(person, first, false)
	require.NoError(t, err)

	outcome, err := Allocate(person, second, false)

	require.NoError(t, err)
	require.NotNil(t, outcome.Pending)
	assert.Equal(t, first, outcome.Pending.From)
	assert.Equal(t, second, outcome.Pending.To)
	// Nothing moved yet
	assert.Equal(t, first, person.Office())
	assert.Equal(t, 1, first.Occupants())
	assert.Equal(t, 0, second.Occupants())
}

func TestAllocate_ConfirmedReallocationMovesOccupant(t *testing.T) {
	first := model.NewRoom("Camelot", model.Office)
	second := model.NewRoom("Valhalla", model.Office)
	person := model.NewPerson(1, "Jane", "Kay", model.Fellow)
	_, err := Allocate(person, first, false)
	require.NoError(t, err)

	outcome, err := Allocate(person, second, true)

	require.NoError(t, err)
	assert.Nil(t, outcome.Pending)
	assert.Equal(t, second, person.Office())
	assert.Equal(t, 0, first.Occupants())
	assert.Equal(t, 1, second.Occupants())
	assert.Equal(t, 1, first.Occupants()+second.Occupants())
}

func TestPick_NoRooms(t *testing.T) {
	src := random.NewSource(1)

	assert.Nil(t, Pick(src, nil))
	assert.Nil(t, Pick(src, []*model.Room{}))
}

func TestPick_SkipsFullRooms(t *testing.T) {
	full := model.NewRoom("Python", model.LivingSpace)
	for i := 0; i < model.LivingSpaceCapacity; i++ {
		occupant := model.NewPerson(i, "Person", "N", model.Fellow)
		require.NoError(t, occupant.AssignLivingSpace(full))
	}
	open := model.NewRoom("Ruby", model.LivingSpace)

	src := random.NewSource(1)
	for i := 0; i < 50; i++ {
		assert.Equal(t, open, Pick(src, []*model.Room{full, open}))
	}
}

func TestPick_AllFull(t *testing.T) {
	full := model.NewRoom("Python", model.LivingSpace)
	for i := 0; i < model.LivingSpaceCapacity; i++ {
		occupant := model.NewPerson(i, "Person", "N", model.Fellow)
		require.NoError(t, occupant.AssignLivingSpace(full))
	}

	assert.Nil(t, Pick(random.NewSource(1), []*model.Room{full}))
}

func TestPick_SpreadsAcrossEligibleRooms(t *testing.T) {
	first := model.NewRoom("Camelot", model.Office)
	second := model.NewRoom("Valhalla", model.Office)
	rooms := []*model.Room{first, second}

	src := random.NewSource(42)
	counts := map[*model.Room]int{}
	for i := 0; i < 1000; i++ {
		counts[Pick(src, rooms)]++
	}

	// Uniform selection over two rooms hits both
	assert.Greater(t, counts[first], 0)
	assert.Greater(t, counts[second], 0)
	assert.Equal(t, 1000, counts[first]+counts[second])
}
