package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dennisjyw/NotionJourney/internal/notion"
	"github.com/dennisjyw/NotionJourney/pkg/model"
	"github.com/dennisjyw/NotionJourney/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTripService struct {
	tripData *model.TripData
	tripErr  error

	days    []model.GroupedItinerary
	daysErr error

	password *string

	blocks    []json.RawMessage
	blocksErr error
	gotPageID string
}

func (s *stubTripService) TripData(ctx context.Context) (*model.TripData, error) {
	return s.tripData, s.tripErr
}

func (s *stubTripService) Days(ctx context.Context) ([]model.GroupedItinerary, error) {
	return s.days, s.daysErr
}

func (s *stubTripService) PasswordConfig(ctx context.Context) *string {
	return s.password
}

func (s *stubTripService) PageBlocks(ctx context.Context, pageID string) ([]json.RawMessage, error) {
	s.gotPageID = pageID
	return s.blocks, s.blocksErr
}

func newTestRouter(svc TripService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{Logger: zap.NewNop(), Trips: svc}

	r := gin.New()
	r.GET("/healthz", h.GetHealth)
	r.GET("/api/v1/trip", h.GetTrip)
	r.GET("/api/v1/trip/days", h.GetTripDays)
	r.GET("/api/v1/trip/password", h.GetPasswordConfig)
	r.GET("/api/v1/pages/:id/blocks", h.GetPageBlocks)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(rec, req)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestGetTrip(t *testing.T) {
	svc := &stubTripService{
		tripData: &model.TripData{
			Metadata: model.TripMetadata{Title: "日本東京行", City: "Tokyo"},
			Itinerary: []model.ItineraryItem{
				{ID: "p-1", Type: "journey", Title: "築地市場", HasContent: true},
			},
		},
	}

	rec, env := doRequest(t, newTestRouter(svc), "/api/v1/trip")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	meta, ok := data["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "日本東京行", meta["title"])
}

func TestGetTripUnauthorizedMapping(t *testing.T) {
	svc := &stubTripService{
		tripErr: &notion.APIError{StatusCode: 401, Code: "unauthorized", Message: "API token is invalid."},
	}

	rec, env := doRequest(t, newTestRouter(svc), "/api/v1/trip")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.Contains(t, env.Error.Message, "NOTION_API_KEY")
}

func TestGetTripNotFoundMapping(t *testing.T) {
	svc := &stubTripService{
		tripErr: &notion.APIError{StatusCode: 404, Code: "object_not_found", Message: "Could not find database."},
	}

	rec, env := doRequest(t, newTestRouter(svc), "/api/v1/trip")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestGetTripGenericErrorCarriesMessage(t *testing.T) {
	svc := &stubTripService{tripErr: errors.New("connection reset by peer")}

	rec, env := doRequest(t, newTestRouter(svc), "/api/v1/trip")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Message, "connection reset by peer")
}

func TestGetTripDays(t *testing.T) {
	svc := &stubTripService{
		days: []model.GroupedItinerary{
			{Day: 1, Date: "2024-03-01", Items: []model.ItineraryItem{{ID: "p-1"}}},
			{Day: 3, Date: "2024-03-03", Items: []model.ItineraryItem{{ID: "p-2"}}},
		},
	}

	rec, env := doRequest(t, newTestRouter(svc), "/api/v1/trip/days")

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	days, ok := data["days"].([]any)
	require.True(t, ok)
	assert.Len(t, days, 2)
}

func TestGetPasswordConfig(t *testing.T) {
	pw := "secret123"
	rec, env := doRequest(t, newTestRouter(&stubTripService{password: &pw}), "/api/v1/trip/password")

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "secret123", data["password"])
}

func TestGetPasswordConfigAbsentIsNull(t *testing.T) {
	rec, env := doRequest(t, newTestRouter(&stubTripService{}), "/api/v1/trip/password")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	val, present := data["password"]
	assert.True(t, present)
	assert.Nil(t, val)
}

func TestGetPageBlocks(t *testing.T) {
	svc := &stubTripService{
		blocks: []json.RawMessage{json.RawMessage(`{"type":"paragraph","paragraph":{}}`)},
	}

	rec, env := doRequest(t, newTestRouter(svc), "/api/v1/pages/page-1/blocks")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "page-1", svc.gotPageID)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	blocks, ok := data["blocks"].([]any)
	require.True(t, ok)
	require.Len(t, blocks, 1)
}

func TestGetPageBlocksUpstreamError(t *testing.T) {
	svc := &stubTripService{
		blocksErr: &notion.APIError{StatusCode: 404, Code: "object_not_found", Message: "Could not find block."},
	}

	rec, env := doRequest(t, newTestRouter(svc), "/api/v1/pages/page-1/blocks")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestGetHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	newTestRouter(&stubTripService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
