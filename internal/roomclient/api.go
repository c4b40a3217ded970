package roomclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RoomAPI is the subset of the room service the controller drives.
type RoomAPI interface {
	List(ctx context.Context) ([]Room, error)
	Create(ctx context.Context, in RoomInput) (*Room, error)
	Update(ctx context.Context, id int64, in RoomInput) error
	Delete(ctx context.Context, id int64) error
}

// APIError is a non-2xx answer from the room service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

// API talks to the room service over HTTP. baseURL is the API root, e.g.
// http://localhost:3000/api.
type API struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewAPI(baseURL string, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}

	// No retries: POST /rooms is not idempotent.
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &API{
		httpClient: client,
		logger:     logger,
	}
}

func (a *API) List(ctx context.Context) ([]Room, error) {
	rooms := make([]Room, 0)
	if err := a.do(ctx, a.httpClient.R().SetResult(&rooms), http.MethodGet, "/rooms"); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (a *API) Create(ctx context.Context, in RoomInput) (*Room, error) {
	var created Room
	req := a.httpClient.R().SetBody(in).SetResult(&created)
	if err := a.do(ctx, req, http.MethodPost, "/rooms"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *API) Update(ctx context.Context, id int64, in RoomInput) error {
	req := a.httpClient.R().SetBody(in).SetResult(&messageBody{})
	return a.do(ctx, req, http.MethodPut, fmt.Sprintf("/rooms/%d", id))
}

func (a *API) Delete(ctx context.Context, id int64) error {
	req := a.httpClient.R().SetResult(&messageBody{})
	return a.do(ctx, req, http.MethodDelete, fmt.Sprintf("/rooms/%d", id))
}

// Search calls the server-side search. The controller never uses it; it is
// kept for programmatic callers that do not hold a local mirror.
func (a *API) Search(ctx context.Context, term string) ([]Room, error) {
	rooms := make([]Room, 0)
	req := a.httpClient.R().SetQueryParam("q", term).SetResult(&rooms)
	if err := a.do(ctx, req, http.MethodGet, "/rooms/search"); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Stats fetches the server-side occupancy counts.
func (a *API) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := a.do(ctx, a.httpClient.R().SetResult(&stats), http.MethodGet, "/rooms/stats"); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *API) do(ctx context.Context, req *resty.Request, method, path string) error {
	var body errorBody
	resp, err := req.SetContext(ctx).SetError(&body).Execute(method, path)
	if err != nil {
		a.logger.Error("room API call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		msg := body.Error
		if msg == "" {
			msg = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode())
		}
		a.logger.Warn("room API returned error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("error", msg),
		)
		return &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}

	return nil
}
