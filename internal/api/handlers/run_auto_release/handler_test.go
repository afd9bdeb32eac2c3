package run_auto_release

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
	autoRelease "github.com/m04kA/SMC-PrepRoomService/internal/usecase/auto_release"
)

type useCaseStub struct {
	calls int
	resp  *autoRelease.Response
	err   error
}

func (s *useCaseStub) Execute(context.Context) (*autoRelease.Response, error) {
	s.calls++
	return s.resp, s.err
}

func serve(h *Handler, staffID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/auto-release", nil)
	if staffID != "" {
		req = req.WithContext(middleware.WithStaffID(req.Context(), staffID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	stub := &useCaseStub{resp: &autoRelease.Response{Examined: 3, Message: "released 0 of 3"}}
	h := NewHandler(stub, testfixtures.NewLogger())

	rec := serve(h, testfixtures.StaffID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stub.calls)
	assert.JSONEq(t, `{"released":0,"examined":3,"releasedIds":[],"message":"released 0 of 3"}`, rec.Body.String())
}

func TestHandle_PartialFailure(t *testing.T) {
	logger := testfixtures.NewLogger()
	stub := &useCaseStub{
		resp: &autoRelease.Response{Released: 1, Examined: 2, ReleasedIDs: []string{"res-1"}},
		err:  fmt.Errorf("%w: 1 reservations failed", autoRelease.ErrInternal),
	}
	h := NewHandler(stub, logger)

	rec := serve(h, testfixtures.StaffID)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, logger.Contains("Partial sweep: released=1"))
}

func TestHandle_NoStaffID(t *testing.T) {
	stub := &useCaseStub{}
	h := NewHandler(stub, testfixtures.NewLogger())

	assert.Equal(t, http.StatusUnauthorized, serve(h, "").Code)
	assert.Zero(t, stub.calls)
}
