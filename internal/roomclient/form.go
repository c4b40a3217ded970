package roomclient

import (
	"fmt"
	"strings"
)

// Form holds the values typed into the room form.
type Form struct {
	RoomNumber string
	RoomType   string
	Price      int64
	Capacity   int
	Status     string
}

// FormFromRoom fills a form with an existing room's fields.
func FormFromRoom(r Room) Form {
	return Form{
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
		Price:      r.Price,
		Capacity:   r.Capacity,
		Status:     r.Status,
	}
}

func (f Form) Input() RoomInput {
	return RoomInput{
		RoomNumber: strings.TrimSpace(f.RoomNumber),
		RoomType:   f.RoomType,
		Price:      f.Price,
		Capacity:   f.Capacity,
		Status:     f.Status,
	}
}

// ValidationError is a form problem caught before any request is sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks required fields, positive price and capacity, and that no
// other local room already uses the room number. exceptID is the room being
// edited, or 0.
func (f Form) Validate(rooms []Room, exceptID int64) error {
	in := f.Input()
	if in.RoomNumber == "" || in.RoomType == "" || in.Price == 0 || in.Capacity == 0 || in.Status == "" {
		return &ValidationError{Message: "Please fill in all fields!"}
	}
	if in.Price <= 0 {
		return &ValidationError{Message: "Price must be greater than 0!"}
	}
	if in.Capacity <= 0 {
		return &ValidationError{Message: "Capacity must be greater than 0!"}
	}
	for _, r := range rooms {
		if r.ID != exceptID && r.RoomNumber == in.RoomNumber {
			return &ValidationError{Message: fmt.Sprintf("Room number %s already exists!", in.RoomNumber)}
		}
	}
	return nil
}
