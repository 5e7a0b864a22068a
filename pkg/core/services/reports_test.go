package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/space-allocator/pkg/core/model"
	"github.com/jakechorley/space-allocator/pkg/core/registry"
	"github.com/jakechorley/space-allocator/pkg/utils/random"
)

func TestAllocations_NothingToReport(t *testing.T) {
	reg := registry.New(random.NewSource(42))

	_, err := Allocations(reg)

	assert.ErrorIs(t, err, ErrNothingToReport)
}

func TestAllocations_Lines(t *testing.T) {
	reg := populatedRegistry(t)

	report, err := Allocations(reg)

	require.NoError(t, err)
	lines := report.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines, "Kate Mitch Staff Hogwarts")
	assert.Contains(t, lines, "Jake Surname Fellow Hogwarts Python")
}

func TestUnallocated_FellowMissingLivingSpace(t *testing.T) {
	reg := registry.New(random.NewSource(42))
	_, err := reg.CreateRooms([]string{"Hogwarts"}, model.Office)
	require.NoError(t, err)
	_, err = reg.AddPerson("Jake", "Surname", "fellow", true)
	require.NoError(t, err)

	report := Unallocated(reg)

	lines := report.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Jake Surname Fellow Hogwarts -", lines[0])
}

func TestUnallocated_EmptyWhenEveryoneHoused(t *testing.T) {
	reg := populatedRegistry(t)

	report := Unallocated(reg)

	assert.Empty(t, report.Lines())
}

func TestWriteReport(t *testing.T) {
	t.Chdir(t.TempDir())

	err := WriteReport([]string{"a", "b"}, "allocations.txt")

	require.NoError(t, err)
	content, err := os.ReadFile("allocations.txt")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))
}

func TestWriteReport_InvalidFilename(t *testing.T) {
	err := WriteReport([]string{"a"}, "bad*name.txt")

	assert.ErrorIs(t, err, ErrInvalidFilename)
}

func TestRoom_UnknownRoom(t *testing.T) {
	reg := registry.New(random.NewSource(42))

	_, err := Room(reg, "Nowhere")

	assert.ErrorIs(t, err, model.ErrRoomNotFound)
}

func TestRoom_ListsMembers(t *testing.T) {
	reg := populatedRegistry(t)

	report, err := Room(reg, "hogwarts")

	require.NoError(t, err)
	assert.Equal(t, "Hogwarts", report.Room.Name)
	require.Len(t, report.Members, 2)
}
