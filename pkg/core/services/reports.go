package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/jakechorley/space-allocator/pkg/core/model"
	"github.com/jakechorley/space-allocator/pkg/core/registry"
)

// disallowedFilenameChars may not appear in report file names
const disallowedFilenameChars = `\/:*?<>|`

// AllocationsReport groups allocated people for rendering.
type AllocationsReport struct {
	Staff             []*model.Person
	FellowsWithBoth   []*model.Person
	FellowsLivingOnly []*model.Person
	FellowsOfficeOnly []*model.Person
}

// Lines renders one line per allocated person, staff first.
func (r *AllocationsReport) Lines() []string {
	var lines []string
	for _, s := range r.Staff {
		lines = append(lines, fmt.Sprintf("%s Staff %s", s.FullName(), s.Office().Name))
	}
	for _, f := range r.FellowsWithBoth {
		lines = append(lines, fmt.Sprintf("%s Fellow %s %s", f.FullName(), f.Office().Name, f.LivingSpace().Name))
	}
	for _, f := range r.FellowsLivingOnly {
		lines = append(lines, fmt.Sprintf("%s Fellow - %s", f.FullName(), f.LivingSpace().Name))
	}
	for _, f := range r.FellowsOfficeOnly {
		lines = append(lines, fmt.Sprintf("%s Fellow %s -", f.FullName(), f.Office().Name))
	}
	return lines
}

// Allocations builds the allocated-people report. An entirely empty report
// is ErrNothingToReport.
func Allocations(reg *registry.Registry) (*AllocationsReport, error) {
	report := &AllocationsReport{
		Staff:             reg.AllocatedStaff(),
		FellowsWithBoth:   reg.FellowsWithBoth(),
		FellowsLivingOnly: reg.FellowsWithLivingOnly(),
		FellowsOfficeOnly: reg.FellowsWithOfficeOnly(),
	}
	if len(report.Lines()) == 0 {
		return nil, ErrNothingToReport
	}
	return report, nil
}

// UnallocatedReport groups people missing allocations.
type UnallocatedReport struct {
	Staff              []*model.Person
	FellowsWithNeither []*model.Person
	FellowsLivingOnly  []*model.Person
	FellowsOfficeOnly  []*model.Person
}

// Lines renders one line per unallocated person.
func (r *UnallocatedReport) Lines() []string {
	var lines []string
	for _, s := range r.Staff {
		lines = append(lines, fmt.Sprintf("%s Staff", s.FullName()))
	}
	for _, f := range r.FellowsWithNeither {
		lines = append(lines, fmt.Sprintf("%s Fellow", f.FullName()))
	}
	for _, f := range r.FellowsLivingOnly {
		lines = append(lines, fmt.Sprintf("%s Fellow - %s", f.FullName(), f.LivingSpace().Name))
	}
	for _, f := range r.FellowsOfficeOnly {
		lines = append(lines, fmt.Sprintf("%s Fellow %s -", f.FullName(), f.Office().Name))
	}
	return lines
}

// Unallocated builds the report of people still missing an allocation,
// including fellows who only hold one of their two possible rooms.
func Unallocated(reg *registry.Registry) *UnallocatedReport {
	return &UnallocatedReport{
		Staff:              reg.UnallocatedStaff(),
		FellowsWithNeither: reg.FellowsWithNeither(),
		FellowsLivingOnly:  reg.FellowsWithLivingOnly(),
		FellowsOfficeOnly:  reg.FellowsWithOfficeOnly(),
	}
}

// WriteReport writes report lines to a file, one per line.
func WriteReport(lines []string, filename string) error {
	if strings.ContainsAny(filename, disallowedFilenameChars) {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}

// RoomReport lists a room's occupants.
type RoomReport struct {
	Room    *model.Room
	Members []*model.Person
}

// Room builds the membership report for one room, found by name.
func Room(reg *registry.Registry, name string) (*RoomReport, error) {
	room, err := reg.FindRoom(name)
	if err != nil {
		return nil, err
	}
	members, err := reg.RoomMembers(name)
	if err != nil {
		return nil, err
	}
	return &RoomReport{Room: room, Members: members}, nil
}
