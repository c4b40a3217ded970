package roomclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPISearchAndStats(t *testing.T) {
	ts := newTestServer(t, seedRooms()...)
	api := NewAPI(ts.apiURL(), nil)
	ctx := context.Background()

	found, err := api.Search(ctx, "deluxe")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "102", found[0].RoomNumber)

	none, err := api.Search(ctx, "penthouse")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = api.Search(ctx, "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Search term is required", apiErr.Message)

	stats, err := api.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 3, Available: 1, Occupied: 1, Maintenance: 1}, *stats)
}

func TestAPICreateUpdateDelete(t *testing.T) {
	ts := newTestServer(t)
	api := NewAPI(ts.apiURL(), nil)
	ctx := context.Background()

	in := RoomInput{RoomNumber: "101", RoomType: "Standard", Price: 500000, Capacity: 2, Status: "available"}
	created, err := api.Create(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, in.RoomNumber, created.RoomNumber)

	in.Status = "occupied"
	require.NoError(t, api.Update(ctx, created.ID, in))

	require.NoError(t, api.Delete(ctx, created.ID))

	err = api.Delete(ctx, created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Room not found", apiErr.Message)
}

func TestAPIErrorWithoutJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewAPI(srv.URL, nil).List(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "HTTP error! status: 502", apiErr.Message)
}
