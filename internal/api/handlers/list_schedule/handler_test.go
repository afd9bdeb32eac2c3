package list_schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
	listSchedule "github.com/m04kA/SMC-PrepRoomService/internal/usecase/list_schedule"
)

type useCaseStub struct {
	got  *listSchedule.Request
	resp *listSchedule.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *listSchedule.Request) (*listSchedule.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, rawQuery string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/funeral-homes/fh-main/schedule?"+rawQuery, nil)
	req = mux.SetURLVars(req, map[string]string{"funeralHomeId": testfixtures.FuneralHomeID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validQuery = "start=2025-03-03T00:00:00Z&end=2025-03-04T00:00:00Z"

func TestHandle_OK(t *testing.T) {
	stub := &useCaseStub{resp: &listSchedule.Response{
		Rooms: []listSchedule.RoomSchedule{
			{
				PrepRoomID:     "room-001",
				RoomNumber:     "101",
				MaxCapacity:    2,
				ReservedCount:  1,
				AvailableSlots: 1,
				OccupancyRate:  50,
				Reservations:   []models.ReservationResponse{{ID: "res-1"}},
			},
		},
		TotalReserved:      1,
		TotalCapacity:      2,
		UtilizationPercent: 50,
	}}
	h := NewHandler(stub, testfixtures.NewLogger())

	rec := serve(h, validQuery)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testfixtures.FuneralHomeID, stub.got.FuneralHomeID)

	var body ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-03-03T00:00:00Z", body.Start)
	assert.InDelta(t, 50.0, body.UtilizationPercent, 0.001)
	require.Len(t, body.Rooms, 1)
	assert.Equal(t, "res-1", body.Rooms[0].Reservations[0].ID)
}

func TestHandle_BadQuery(t *testing.T) {
	for _, q := range []string{"", "start=2025-03-03T00:00:00Z", "start=yesterday&end=today"} {
		stub := &useCaseStub{}
		h := NewHandler(stub, testfixtures.NewLogger())

		rec := serve(h, q)

		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.Nil(t, stub.got, q)
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	h := NewHandler(&useCaseStub{err: fmt.Errorf("%w: end must be after start", listSchedule.ErrInvalidInput)}, testfixtures.NewLogger())
	assert.Equal(t, http.StatusBadRequest, serve(h, validQuery).Code)

	h = NewHandler(&useCaseStub{err: fmt.Errorf("%w: db", listSchedule.ErrInternal)}, testfixtures.NewLogger())
	assert.Equal(t, http.StatusInternalServerError, serve(h, validQuery).Code)
}
