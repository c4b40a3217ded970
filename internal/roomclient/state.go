package roomclient

import "strings"

// Room mirrors the service's JSON representation of a room.
type Room struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	Price      int64  `json:"price"`
	Capacity   int    `json:"capacity"`
	Status     string `json:"status"`
}

// RoomInput is the request body of create and update.
type RoomInput struct {
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	Price      int64  `json:"price"`
	Capacity   int    `json:"capacity"`
	Status     string `json:"status"`
}

// Stats are occupancy counts, either from the server or recomputed locally.
type Stats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}

// Mode is the state of the room form.
type Mode int

const (
	ModeIdle Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "idle"
}

// State is the client's local mirror of the server. EditingID is 0 when no
// edit is in progress.
type State struct {
	Rooms     []Room
	EditingID int64
	Term      string
}

func (s *State) Mode() Mode {
	if s.EditingID != 0 {
		return ModeEditing
	}
	return ModeIdle
}

// Find returns the local room with id.
func (s *State) Find(id int64) (Room, bool) {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// Replace swaps the whole mirror, as after a List.
func (s *State) Replace(rooms []Room) {
	s.Rooms = append([]Room(nil), rooms...)
}

func (s *State) Add(r Room) {
	s.Rooms = append(s.Rooms, r)
}

// Put overwrites the room with the same id; it reports false when absent.
func (s *State) Put(r Room) bool {
	for i := range s.Rooms {
		if s.Rooms[i].ID == r.ID {
			s.Rooms[i] = r
			return true
		}
	}
	return false
}

func (s *State) Remove(id int64) {
	kept := make([]Room, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.Rooms = kept
}

// Visible is the mirror narrowed by the current search term.
func (s *State) Visible() []Room {
	return FilterRooms(s.Rooms, s.Term)
}

// FilterRooms keeps rooms whose number, type or status contains term,
// ignoring case. A blank term keeps everything.
func FilterRooms(rooms []Room, term string) []Room {
	term = strings.ToLower(strings.TrimSpace(term))
	result := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if term == "" ||
			strings.Contains(strings.ToLower(r.RoomNumber), term) ||
			strings.Contains(strings.ToLower(r.RoomType), term) ||
			strings.Contains(strings.ToLower(r.Status), term) {
			result = append(result, r)
		}
	}
	return result
}

// CountStatuses recomputes the occupancy counts from a room list.
func CountStatuses(rooms []Room) Stats {
	s := Stats{Total: len(rooms)}
	for _, r := range rooms {
		switch r.Status {
		case "available":
			s.Available++
		case "occupied":
			s.Occupied++
		case "maintenance":
			s.Maintenance++
		}
	}
	return s
}
