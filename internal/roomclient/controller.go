package roomclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	ErrNotEditing     = errors.New("no room is being edited")
	ErrEditInProgress = errors.New("finish or reset the current edit first")
	ErrUnknownRoom    = errors.New("room not found in local list")
	ErrDeleteDeclined = errors.New("delete not confirmed")
)

// MessageKind classifies a user-visible message.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// View is everything the presentation layer needs to redraw.
type View struct {
	Rooms []Room
	Stats Stats
	Mode  Mode
}

// Presenter renders the room list and shows transient messages.
type Presenter interface {
	Render(v View)
	ShowMessage(kind MessageKind, text string)
}

// Confirmer asks the user a yes/no question before destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Controller keeps the local room mirror in step with the service. Failed
// calls never change the mirror.
type Controller struct {
	api       RoomAPI
	presenter Presenter
	confirmer Confirmer
	logger    *zap.Logger

	mu      sync.Mutex
	state   State
	visible atomic.Bool
}

func NewController(api RoomAPI, presenter Presenter, confirmer Confirmer, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		api:       api,
		presenter: presenter,
		confirmer: confirmer,
		logger:    logger,
	}
	c.visible.Store(true)
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Rooms = append([]Room(nil), c.state.Rooms...)
	return s
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Mode()
}

// AddEnabled reports whether the add control is active.
func (c *Controller) AddEnabled() bool {
	return c.Mode() == ModeIdle
}

// UpdateEnabled reports whether the update control is active.
func (c *Controller) UpdateEnabled() bool {
	return c.Mode() == ModeEditing
}

// SetVisible records whether the view is on screen; auto refresh pauses while hidden.
func (c *Controller) SetVisible(visible bool) {
	c.visible.Store(visible)
}

// Load replaces the mirror with the server's list.
func (c *Controller) Load(ctx context.Context) error {
	rooms, err := c.api.List(ctx)
	if err != nil {
		c.fail("Failed to load rooms", err)
		return err
	}

	c.mu.Lock()
	c.state.Replace(rooms)
	v := c.viewLocked()
	c.mu.Unlock()

	c.presenter.Render(v)
	return nil
}

// Filter narrows the rendered list to rooms matching term, without a server call.
func (c *Controller) Filter(term string) []Room {
	c.mu.Lock()
	c.state.Term = term
	v := c.viewLocked()
	c.mu.Unlock()

	c.presenter.Render(v)
	return v.Rooms
}

// SubmitCreate validates the form and creates the room; the created room is
// appended to the mirror.
func (c *Controller) SubmitCreate(ctx context.Context, f Form) error {
	c.mu.Lock()
	if c.state.Mode() != ModeIdle {
		c.mu.Unlock()
		return c.reject(ErrEditInProgress)
	}
	err := f.Validate(c.state.Rooms, 0)
	c.mu.Unlock()
	if err != nil {
		return c.reject(err)
	}

	created, err := c.api.Create(ctx, f.Input())
	if err != nil {
		c.fail("Failed to add room", err)
		return err
	}

	c.mu.Lock()
	c.state.Add(*created)
	c.state.EditingID = 0
	v := c.viewLocked()
	c.mu.Unlock()

	c.presenter.Render(v)
	c.presenter.ShowMessage(MessageSuccess, "Room added successfully!")
	return nil
}

// BeginEdit loads the local room into a form and enters editing mode.
func (c *Controller) BeginEdit(id int64) (Form, error) {
	c.mu.Lock()
	r, ok := c.state.Find(id)
	if ok {
		c.state.EditingID = id
	}
	v := c.viewLocked()
	c.mu.Unlock()

	if !ok {
		return Form{}, ErrUnknownRoom
	}
	c.presenter.Render(v)
	return FormFromRoom(r), nil
}

// SubmitUpdate saves the form over the room being edited and returns to idle.
func (c *Controller) SubmitUpdate(ctx context.Context, f Form) error {
	c.mu.Lock()
	id := c.state.EditingID
	if id == 0 {
		c.mu.Unlock()
		return ErrNotEditing
	}
	err := f.Validate(c.state.Rooms, id)
	c.mu.Unlock()
	if err != nil {
		return c.reject(err)
	}

	in := f.Input()
	if err := c.api.Update(ctx, id, in); err != nil {
		c.fail("Failed to update room", err)
		return err
	}

	c.mu.Lock()
	c.state.Put(Room{
		ID:         id,
		RoomNumber: in.RoomNumber,
		RoomType:   in.RoomType,
		Price:      in.Price,
		Capacity:   in.Capacity,
		Status:     in.Status,
	})
	if c.state.EditingID == id {
		c.state.EditingID = 0
	}
	v := c.viewLocked()
	c.mu.Unlock()

	c.presenter.Render(v)
	c.presenter.ShowMessage(MessageSuccess, "Room updated successfully!")
	return nil
}

// Reset leaves editing mode.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.state.EditingID = 0
	v := c.viewLocked()
	c.mu.Unlock()

	c.presenter.Render(v)
}

// Delete asks for confirmation naming the room number, then deletes the room.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	r, ok := c.state.Find(id)
	c.mu.Unlock()
	if !ok {
		return ErrUnknownRoom
	}

	if !c.confirmer.Confirm(fmt.Sprintf("Are you sure you want to delete room %s?", r.RoomNumber)) {
		return ErrDeleteDeclined
	}

	if err := c.api.Delete(ctx, id); err != nil {
		c.fail("Failed to delete room", err)
		return err
	}

	c.mu.Lock()
	c.state.Remove(id)
	if c.state.EditingID == id {
		c.state.EditingID = 0
	}
	v := c.viewLocked()
	c.mu.Unlock()

	c.presenter.Render(v)
	c.presenter.ShowMessage(MessageSuccess, "Room deleted successfully!")
	return nil
}

func (c *Controller) viewLocked() View {
	return View{
		Rooms: c.state.Visible(),
		Stats: CountStatuses(c.state.Rooms),
		Mode:  c.state.Mode(),
	}
}

func (c *Controller) reject(err error) error {
	c.presenter.ShowMessage(MessageError, err.Error())
	return err
}

func (c *Controller) fail(action string, err error) {
	c.logger.Warn(action, zap.Error(err))
	c.presenter.ShowMessage(MessageError, action+": "+err.Error())
}
