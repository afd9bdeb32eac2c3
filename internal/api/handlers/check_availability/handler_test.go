package check_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
	checkAvailability "github.com/m04kA/SMC-PrepRoomService/internal/usecase/check_availability"
)

type useCaseStub struct {
	got  *checkAvailability.Request
	resp *checkAvailability.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, rawQuery string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/funeral-homes/fh-main/availability?"+rawQuery, nil)
	req = mux.SetURLVars(req, map[string]string{"funeralHomeId": testfixtures.FuneralHomeID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validQuery = "from=2025-03-03T08:00:00Z&to=2025-03-03T20:00:00Z&duration=240"

func TestHandle_OK(t *testing.T) {
	stub := &useCaseStub{resp: &checkAvailability.Response{
		Slots: []models.SlotResponse{
			{PrepRoomID: "room-001", RoomNumber: "101", StartTime: "2025-03-03T08:00:00Z", EndTime: "2025-03-03T12:00:00Z", DurationMinutes: 240},
		},
		UrgentSlots: []models.SlotResponse{},
		Total:       1,
	}}
	h := NewHandler(stub, testfixtures.NewLogger())

	rec := serve(h, validQuery+"&capacity=2&urgent=true")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.got)
	assert.Equal(t, testfixtures.FuneralHomeID, stub.got.FuneralHomeID)
	assert.Equal(t, 240, stub.got.DurationMinutes)
	assert.Equal(t, 2, stub.got.Capacity)
	assert.True(t, stub.got.IsUrgent)
	assert.Equal(t, 12*time.Hour, stub.got.To.Sub(stub.got.From))

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "101", body.Slots[0].RoomNumber)
}

func TestHandle_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing duration", query: "from=2025-03-03T08:00:00Z&to=2025-03-03T20:00:00Z"},
		{name: "duration not a number", query: "from=2025-03-03T08:00:00Z&to=2025-03-03T20:00:00Z&duration=long"},
		{name: "urgent not a bool", query: validQuery + "&urgent=maybe"},
		{name: "from not RFC 3339", query: "from=2025-03-03&to=2025-03-03T20:00:00Z&duration=240"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &useCaseStub{}
			h := NewHandler(stub, testfixtures.NewLogger())

			rec := serve(h, tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, stub.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "time range", err: checkAvailability.ErrInvalidTimeRange, wantStatus: http.StatusBadRequest},
		{name: "duration", err: fmt.Errorf("%w: 60 minutes", checkAvailability.ErrInvalidDuration), wantStatus: http.StatusBadRequest},
		{name: "internal", err: fmt.Errorf("%w: db", checkAvailability.ErrInternal), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&useCaseStub{err: tt.err}, testfixtures.NewLogger())
			assert.Equal(t, tt.wantStatus, serve(h, validQuery).Code)
		})
	}
}
