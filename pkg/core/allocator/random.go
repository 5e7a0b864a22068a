package allocator

import "github.com/jakechorley/space-allocator/pkg/core/model"

// Source yields uniform random integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it; tests inject deterministic sources.
type Source interface {
	IntN(n int) int
}

// Pick selects one non-full room uniformly at random. It returns nil when
// no room is eligible (including when rooms is empty), which is a normal
// outcome, not an error.
func Pick(src Source, rooms []*model.Room) *model.Room {
	eligible := make([]*model.Room, 0, len(rooms))
	for _, room := range rooms {
		if !room.IsFull() {
			eligible = append(eligible, room)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	return eligible[src.IntN(len(eligible))]
}
