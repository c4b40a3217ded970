package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-room-inventory/internal/pkg/request"
	"github.com/nekogravitycat/hotel-room-inventory/internal/pkg/response"
	"github.com/nekogravitycat/hotel-room-inventory/internal/room"
)

type Handler struct {
	service room.Service
}

func NewHandler(service room.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err, "Failed to fetch rooms")
		return
	}

	c.JSON(http.StatusOK, NewListResponse(rooms))
}

func (h *Handler) Create(c *gin.Context) {
	var body RoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	rm, err := h.service.Create(c.Request.Context(), body.ToInput())
	if err != nil {
		response.Error(c, err, "Failed to add room")
		return
	}

	c.JSON(http.StatusCreated, NewResponse(rm))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid room id", err)
		return
	}

	var body RoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), uri.ID, body.ToInput()); err != nil {
		response.Error(c, err, "Failed to update room")
		return
	}

	response.Message(c, http.StatusOK, "Room updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid room id", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err, "Failed to delete room")
		return
	}

	response.Message(c, http.StatusOK, "Room deleted successfully")
}

// Search is the server-side search for programmatic callers; the room client
// filters its local mirror instead.
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	rooms, err := h.service.Search(c.Request.Context(), req.Q)
	if err != nil {
		response.Error(c, err, "Failed to search rooms")
		return
	}

	c.JSON(http.StatusOK, NewListResponse(rooms))
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err, "Failed to fetch statistics")
		return
	}

	c.JSON(http.StatusOK, NewStatsResponse(stats))
}
