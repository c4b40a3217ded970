package http

import (
	"github.com/nekogravitycat/hotel-room-inventory/internal/room"
)

type RoomResponse struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	Price      int64  `json:"price"`
	Capacity   int    `json:"capacity"`
	Status     string `json:"status"`
}

func NewResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
		Price:      r.Price,
		Capacity:   r.Capacity,
		Status:     string(r.Status),
	}
}

func NewListResponse(rooms []*room.Room) []RoomResponse {
	items := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = NewResponse(r)
	}
	return items
}

// RoomRequest is the body of both POST /rooms and PUT /rooms/:id.
type RoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required,max=50"`
	RoomType   string `json:"room_type" binding:"required,max=50"`
	Price      int64  `json:"price" binding:"required,gt=0"`
	Capacity   int    `json:"capacity" binding:"required,gt=0"`
	Status     string `json:"status" binding:"required,oneof=available occupied maintenance"`
}

func (r *RoomRequest) ToInput() room.Input {
	return room.Input{
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
		Price:      r.Price,
		Capacity:   r.Capacity,
		Status:     room.Status(r.Status),
	}
}

type SearchRequest struct {
	Q string `form:"q"`
}

type StatsResponse struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Occupied    int64 `json:"occupied"`
	Maintenance int64 `json:"maintenance"`
}

func NewStatsResponse(s *room.Stats) StatsResponse {
	return StatsResponse{
		Total:       s.Total,
		Available:   s.Available,
		Occupied:    s.Occupied,
		Maintenance: s.Maintenance,
	}
}
