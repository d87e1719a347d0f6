package candidate_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrdesk/internal/candidate"
	"go-hrdesk/internal/candidate/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newCandidateRouter(t *testing.T) (*gin.Engine, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := mock.NewMockService(gomock.NewController(t))
	h := candidate.NewHandler(svc)

	r := gin.New()
	r.POST("/candidates", h.Create)
	r.GET("/candidates", h.GetAll)
	r.GET("/candidates/options", h.Options)
	r.GET("/candidates/:id", h.GetByID)
	return r, svc
}

func TestCandidateHandler_Create(t *testing.T) {
	r, svc := newCandidateRouter(t)

	t.Run("missing field", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/candidates", strings.NewReader(`{"name":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().
			Create(gomock.Any(), "", candidate.CreateCandidateRequest{Name: "A", Designation: "D", Project: "P", Location: "L"}).
			Return(candidate.CandidateResponse{ID: 1, Name: "A"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/candidates",
			strings.NewReader(`{"name":"A","designation":"D","project":"P","location":"L"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":1`)
	})
}

func TestCandidateHandler_Options(t *testing.T) {
	r, svc := newCandidateRouter(t)
	svc.EXPECT().Options(gomock.Any()).Return([]candidate.Option{{ID: 4, Name: "D"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/candidates/options", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"id":4,"name":"D"}`)
}

func TestCandidateHandler_GetAll(t *testing.T) {
	r, svc := newCandidateRouter(t)
	svc.EXPECT().GetAll(gomock.Any(), 1, 10).Return([]candidate.CandidateResponse{}, int64(0), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/candidates", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
