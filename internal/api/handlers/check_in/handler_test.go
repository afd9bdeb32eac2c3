package check_in

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
	checkIn "github.com/m04kA/SMC-PrepRoomService/internal/usecase/check_in"
)

type useCaseStub struct {
	got  *checkIn.Request
	resp *checkIn.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *checkIn.Request) (*checkIn.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/res-1/check-in", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"reservationId": "res-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	stub := &useCaseStub{resp: &checkIn.Response{
		Reservation: &models.ReservationResponse{ID: "res-1", Status: "in_progress"},
		Message:     "check-in recorded",
	}}
	h := NewHandler(stub, testfixtures.NewLogger())

	rec := serve(h, `{"embalmerId": "embalmer-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &checkIn.Request{ReservationID: "res-1", EmbalmerID: "embalmer-1"}, stub.got)
	assert.Contains(t, rec.Body.String(), `"status":"in_progress"`)
}

func TestHandle_MissingEmbalmer(t *testing.T) {
	stub := &useCaseStub{}
	h := NewHandler(stub, testfixtures.NewLogger())

	rec := serve(h, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"embalmerId":"required"`)
	assert.Nil(t, stub.got)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: checkIn.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{name: "embalmer mismatch", err: fmt.Errorf("%w: other", checkIn.ErrEmbalmerMismatch), wantStatus: http.StatusForbidden},
		{name: "not confirmed", err: fmt.Errorf("%w: current status completed", checkIn.ErrInvalidTransition), wantStatus: http.StatusBadRequest},
		{name: "internal", err: fmt.Errorf("%w: db", checkIn.ErrInternal), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&useCaseStub{err: tt.err}, testfixtures.NewLogger())
			assert.Equal(t, tt.wantStatus, serve(h, `{"embalmerId": "embalmer-1"}`).Code)
		})
	}
}
