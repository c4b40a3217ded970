package room

import (
	"net/http"

	"github.com/nekogravitycat/hotel-room-inventory/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "Room not found")
	ErrDuplicateRoomNumber = apperror.New(http.StatusConflict, "Room number already exists")
	ErrSearchTermRequired  = apperror.New(http.StatusBadRequest, "Search term is required")
	ErrRoomNumberRequired  = apperror.New(http.StatusBadRequest, "room_number is required")
	ErrRoomTypeRequired    = apperror.New(http.StatusBadRequest, "room_type is required")
	ErrInvalidPrice        = apperror.New(http.StatusBadRequest, "price must be greater than 0")
	ErrInvalidCapacity     = apperror.New(http.StatusBadRequest, "capacity must be greater than 0")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "status must be one of available, occupied, maintenance")
)

// Status is the occupancy state of a room.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

// ValidStatuses lists every status the store accepts, in display order.
var ValidStatuses = []Status{StatusAvailable, StatusOccupied, StatusMaintenance}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Room is a single bookable hotel room. Price is in VND.
type Room struct {
	ID         int64
	RoomNumber string
	RoomType   string
	Price      int64
	Capacity   int
	Status     Status
}

// Stats holds room counts, overall and per status.
type Stats struct {
	Total       int64
	Available   int64
	Occupied    int64
	Maintenance int64
}
