package roomclient

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-room-inventory/internal/app"
	"github.com/nekogravitycat/hotel-room-inventory/internal/room"
	"github.com/nekogravitycat/hotel-room-inventory/internal/room/roomtest"
)

// testServer runs the real router over an in-memory repository and counts requests.
type testServer struct {
	*httptest.Server
	repo     *roomtest.MemoryRepository
	requests atomic.Int64
}

func newTestServer(t *testing.T, seed ...room.Room) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{repo: roomtest.NewMemoryRepository(seed...)}
	router := app.NewContainer(app.Config{RoomRepository: ts.repo}).Router
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.requests.Add(1)
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func (ts *testServer) apiURL() string {
	return ts.URL + "/api"
}

type message struct {
	kind MessageKind
	text string
}

type recordingPresenter struct {
	mu       sync.Mutex
	views    []View
	messages []message
}

func (p *recordingPresenter) Render(v View) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.views = append(p.views, v)
}

func (p *recordingPresenter) ShowMessage(kind MessageKind, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, message{kind: kind, text: text})
}

func (p *recordingPresenter) lastView() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.views) == 0 {
		return View{}
	}
	return p.views[len(p.views)-1]
}

func (p *recordingPresenter) lastMessage() message {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.messages) == 0 {
		return message{}
	}
	return p.messages[len(p.messages)-1]
}

type scriptedConfirmer struct {
	answer  bool
	prompts []string
}

func (c *scriptedConfirmer) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

func seedRooms() []room.Room {
	return []room.Room{
		{RoomNumber: "101", RoomType: "Standard", Price: 500000, Capacity: 2, Status: room.StatusAvailable},
		{RoomNumber: "102", RoomType: "Deluxe", Price: 800000, Capacity: 2, Status: room.StatusOccupied},
		{RoomNumber: "201", RoomType: "Suite", Price: 1500000, Capacity: 4, Status: room.StatusMaintenance},
	}
}

func validForm(number string) Form {
	return Form{
		RoomNumber: number,
		RoomType:   "Standard",
		Price:      500000,
		Capacity:   2,
		Status:     "available",
	}
}
