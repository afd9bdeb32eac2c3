package get_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
)

type serviceStub struct {
	gotID string
	resp  *models.ReservationResponse
	err   error
}

func (s *serviceStub) GetByID(_ context.Context, id string) (*models.ReservationResponse, error) {
	s.gotID = id
	return s.resp, s.err
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+url.PathEscape(id), nil)
	req = mux.SetURLVars(req, map[string]string{"reservationId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	stub := &serviceStub{resp: &models.ReservationResponse{ID: "res-1", Status: "in_progress"}}
	h := NewHandler(stub, testfixtures.NewLogger())

	rec := serve(h, "res-1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "res-1", stub.gotID)

	var body models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "in_progress", body.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: reservations.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: fmt.Errorf("%w: boom", reservations.ErrInternal), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&serviceStub{err: tt.err}, testfixtures.NewLogger())
			assert.Equal(t, tt.wantStatus, serve(h, "res-404").Code)
		})
	}
}

func TestHandle_BlankID(t *testing.T) {
	stub := &serviceStub{}
	h := NewHandler(stub, testfixtures.NewLogger())

	rec := serve(h, " ")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, stub.gotID)
}
