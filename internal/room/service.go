package room

import (
	"context"
	"strings"
)

// Input carries the client-supplied fields of a room. It is shared by create and update.
type Input struct {
	RoomNumber string
	RoomType   string
	Price      int64
	Capacity   int
	Status     Status
}

type Service interface {
	List(ctx context.Context) ([]*Room, error)
	Create(ctx context.Context, in Input) (*Room, error)
	Update(ctx context.Context, id int64, in Input) (*Room, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*Room, error)
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Room, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, in Input) (*Room, error) {
	rm, err := newRoom(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

// Update overwrites every field of the room with the given id in a single statement.
func (s *service) Update(ctx context.Context, id int64, in Input) (*Room, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	rm, err := newRoom(in)
	if err != nil {
		return nil, err
	}
	rm.ID = id
	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Search(ctx context.Context, term string) ([]*Room, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrSearchTermRequired
	}
	return s.repo.Search(ctx, term)
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}

func newRoom(in Input) (*Room, error) {
	rm := &Room{
		RoomNumber: strings.TrimSpace(in.RoomNumber),
		RoomType:   strings.TrimSpace(in.RoomType),
		Price:      in.Price,
		Capacity:   in.Capacity,
		Status:     Status(strings.ToLower(strings.TrimSpace(string(in.Status)))),
	}

	switch {
	case rm.RoomNumber == "":
		return nil, ErrRoomNumberRequired
	case rm.RoomType == "":
		return nil, ErrRoomTypeRequired
	case rm.Price <= 0:
		return nil, ErrInvalidPrice
	case rm.Capacity <= 0:
		return nil, ErrInvalidCapacity
	case !rm.Status.Valid():
		return nil, ErrInvalidStatus
	}
	return rm, nil
}
