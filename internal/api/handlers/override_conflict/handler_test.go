package override_conflict

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
	overrideConflict "github.com/m04kA/SMC-PrepRoomService/internal/usecase/override_conflict"
)

type useCaseStub struct {
	got  *overrideConflict.Request
	resp *overrideConflict.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *overrideConflict.Request) (*overrideConflict.Response, error) {
	s.got = req
	return s.resp, s.err
}

const validBody = `{
	"prepRoomId": "room-001",
	"embalmerId": "embalmer-1",
	"caseId": "case-2",
	"familyId": "family-2",
	"reservedFrom": "2025-03-03T11:00:00Z",
	"durationMinutes": 180,
	"managerApprovalId": "manager-1",
	"overrideReason": "family viewing moved up"
}`

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/override", strings.NewReader(body))
	req = req.WithContext(middleware.WithStaffID(req.Context(), testfixtures.StaffID))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	stub := &useCaseStub{resp: &overrideConflict.Response{
		Success:     true,
		Reservation: &models.ReservationResponse{ID: "res-2"},
		OverriddenConflicts: []models.ConflictResponse{
			{ConflictType: "overlap", ReservationID: "res-1"},
		},
		Message: "reservation created with override approved by manager-1",
	}}
	h := NewHandler(stub, testfixtures.NewLogger())

	rec := serve(h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.got)
	assert.Equal(t, "manager-1", stub.got.ManagerApprovalID)
	assert.Equal(t, "family viewing moved up", stub.got.OverrideReason)
	assert.Equal(t, testfixtures.StaffID, stub.got.CreatedBy)

	var body OverrideResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.OverriddenConflicts, 1)
	assert.Equal(t, "res-1", body.OverriddenConflicts[0].ReservationID)
}

func TestHandle_NoConflictsRendersEmptyList(t *testing.T) {
	stub := &useCaseStub{resp: &overrideConflict.Response{
		Success:     true,
		Reservation: &models.ReservationResponse{ID: "res-3"},
	}}
	h := NewHandler(stub, testfixtures.NewLogger())

	rec := serve(h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"overriddenConflicts":[]`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "approval missing", err: overrideConflict.ErrApprovalRequired, wantStatus: http.StatusForbidden},
		{name: "room not found", err: overrideConflict.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid duration", err: overrideConflict.ErrInvalidDuration, wantStatus: http.StatusBadRequest},
		{name: "invalid input", err: fmt.Errorf("%w: caseId", overrideConflict.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "internal", err: fmt.Errorf("%w: db down", overrideConflict.ErrInternal), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&useCaseStub{err: tt.err}, testfixtures.NewLogger())

			rec := serve(h, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
