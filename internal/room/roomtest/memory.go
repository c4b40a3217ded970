// Package roomtest provides an in-memory room.Repository for tests.
package roomtest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/nekogravitycat/hotel-room-inventory/internal/room"
)

// MemoryRepository mimics the Postgres repository, including the unique
// room_number constraint and generated ids.
type MemoryRepository struct {
	mu     sync.Mutex
	rooms  map[int64]room.Room
	nextID int64

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemoryRepository(seed ...room.Room) *MemoryRepository {
	r := &MemoryRepository{rooms: make(map[int64]room.Room)}
	for _, rm := range seed {
		rm := rm
		_ = r.Create(context.Background(), &rm)
	}
	return r
}

// Len returns the number of stored rooms.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}

// Get returns a copy of the stored room.
func (r *MemoryRepository) Get(id int64) (room.Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[id]
	return rm, ok
}

func (r *MemoryRepository) List(ctx context.Context) ([]*room.Room, error) {
	return r.filter(func(room.Room) bool { return true })
}

func (r *MemoryRepository) Create(ctx context.Context, rm *room.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if r.numberTaken(rm.RoomNumber, 0) {
		return room.ErrDuplicateRoomNumber
	}
	r.nextID++
	rm.ID = r.nextID
	r.rooms[rm.ID] = *rm
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, rm *room.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.rooms[rm.ID]; !ok {
		return room.ErrNotFound
	}
	if r.numberTaken(rm.RoomNumber, rm.ID) {
		return room.ErrDuplicateRoomNumber
	}
	r.rooms[rm.ID] = *rm
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.rooms[id]; !ok {
		return room.ErrNotFound
	}
	delete(r.rooms, id)
	return nil
}

func (r *MemoryRepository) Search(ctx context.Context, term string) ([]*room.Room, error) {
	term = strings.ToLower(term)
	return r.filter(func(rm room.Room) bool {
		return strings.Contains(strings.ToLower(rm.RoomNumber), term) ||
			strings.Contains(strings.ToLower(rm.RoomType), term) ||
			strings.Contains(strings.ToLower(string(rm.Status)), term)
	})
}

func (r *MemoryRepository) Stats(ctx context.Context) (*room.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var s room.Stats
	for _, rm := range r.rooms {
		s.Total++
		switch rm.Status {
		case room.StatusAvailable:
			s.Available++
		case room.StatusOccupied:
			s.Occupied++
		case room.StatusMaintenance:
			s.Maintenance++
		}
	}
	return &s, nil
}

func (r *MemoryRepository) filter(keep func(room.Room) bool) ([]*room.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]*room.Room, 0, len(r.rooms))
	for _, rm := range r.rooms {
		if keep(rm) {
			rm := rm
			result = append(result, &rm)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryRepository) numberTaken(number string, exceptID int64) bool {
	for id, rm := range r.rooms {
		if id != exceptID && rm.RoomNumber == number {
			return true
		}
	}
	return false
}
