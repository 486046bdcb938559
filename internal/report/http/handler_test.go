package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/safework/safework/internal/auth/domain"
	authHTTP "github.com/safework/safework/internal/auth/http"
	"github.com/safework/safework/internal/report/domain"
	"github.com/safework/safework/internal/report/http/dto"
	httpMocks "github.com/safework/safework/internal/report/http/mocks"
)

func setupReportTestHandler(t *testing.T) (*ReportHandler, *httpMocks.MockReportUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &httpMocks.MockReportUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewReportHandler(mockUseCase, logger), mockUseCase
}

// createTestContext builds a gin context carrying an authenticated identity
// and an :id path parameter when non-empty.
func createTestContext(
	method, path string,
	body interface{},
	identity *authDomain.Identity,
	reportID string,
) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if identity != nil {
		req = req.WithContext(authHTTP.WithIdentity(req.Context(), *identity))
	}
	c.Request = req
	if reportID != "" {
		c.Params = gin.Params{{Key: "id", Value: reportID}}
	}

	return c, w
}

func reporter() *authDomain.Identity {
	return &authDomain.Identity{UserID: 7, Role: authDomain.RoleUser}
}

func adminActor() *authDomain.Identity {
	return &authDomain.Identity{UserID: 9, Role: authDomain.RoleAdmin}
}

func sampleReport() *domain.Report {
	now := time.Now().UTC()
	return &domain.Report{
		ID:           3,
		ReporterID:   7,
		Title:        "Exposed wiring near line 2",
		Content:      "Cable tray cover missing",
		ReporterRisk: 4,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestReportHandler_CreateReportHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupReportTestHandler(t)

		mockUseCase.On("Create", mock.Anything, *reporter(), mock.AnythingOfType("usecase.CreateReportInput")).
			Return(sampleReport(), nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/reports", dto.CreateReportRequest{
			Title:        "Exposed wiring near line 2",
			Content:      "Cable tray cover missing",
			ReporterRisk: 4,
		}, reporter(), "")

		handler.CreateReportHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ReportResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(3), response.ID)
		assert.False(t, response.Checked)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NoIdentity", func(t *testing.T) {
		handler, mockUseCase := setupReportTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/reports", dto.CreateReportRequest{
			Title:        "Exposed wiring",
			Content:      "details",
			ReporterRisk: 4,
		}, nil, "")

		handler.CreateReportHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Create")
	})

	t.Run("Error_RiskOutOfRange", func(t *testing.T) {
		handler, mockUseCase := setupReportTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/reports", dto.CreateReportRequest{
			Title:        "Exposed wiring",
			Content:      "details",
			ReporterRisk: 9,
		}, reporter(), "")

		handler.CreateReportHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Create")
	})
}

func TestReportHandler_GetReportHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupReportTestHandler(t)

		mockUseCase.On("Get", mock.Anything, int64(3)).Return(sampleReport(), nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/reports/3", nil, reporter(), "3")

		handler.GetReportHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupReportTestHandler(t)

		mockUseCase.On("Get", mock.Anything, int64(99)).
			Return(nil, domain.ErrReportNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/api/reports/99", nil, reporter(), "99")

		handler.GetReportHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_NonNumericID", func(t *testing.T) {
		handler, mockUseCase := setupReportTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/api/reports/abc", nil, reporter(), "abc")

		handler.GetReportHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Get")
	})
}

func TestReportHandler_UpdateReportHandler(t *testing.T) {
	t.Run("Success_CheckedPatch", func(t *testing.T) {
		handler, mockUseCase := setupReportTestHandler(t)

		checked := true
		updated := sampleReport()
		checkerID := int64(7)
		now := time.Now().UTC()
		updated.Checked = true
		updated.CheckerID = &checkerID
		updated.CheckedAt = &now

		expectedPatch := domain.UpdatePatch{Checked: &checked}
		mockUseCase.On("ApplyUpdate", mock.Anything, *reporter(), int64(3), expectedPatch).
			Return(updated, nil).
			Once()

		c, w := createTestContext(http.MethodPut, "/api/reports/3",
			dto.UpdateReportRequest{Checked: &checked}, reporter(), "3")

		handler.UpdateReportHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ReportResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Checked)
		require.NotNil(t, response.CheckerID)
		assert.Equal(t, int64(7), *response.CheckerID)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_Forbidden", func(t *testing.T) {
		handler, mockUseCase := setupReportTestHandler(t)

		checked := true
		unrelated := &authDomain.Identity{UserID: 10, Role: authDomain.RoleUser}
		mockUseCase.On("ApplyUpdate", mock.Anything, *unrelated, int64(3), mock.Anything).
			Return(nil, domain.ErrReportAccessDenied).
			Once()

		c, w := createTestContext(http.MethodPut, "/api/reports/3",
			dto.UpdateReportRequest{Checked: &checked}, unrelated, "3")

		handler.UpdateReportHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestReportHandler_DeleteReportHandler(t *testing.T) {
	t.Run("Success_Owner", func(t *testing.T) {
		handler, mockUseCase := setupReportTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, *reporter(), int64(3)).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/api/reports/3", nil, reporter(), "3")

		handler.DeleteReportHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NotOwner", func(t *testing.T) {
		handler, mockUseCase := setupReportTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, *adminActor(), int64(3)).
			Return(domain.ErrReportAccessDenied).Once()

		c, w := createTestContext(http.MethodDelete, "/api/reports/3", nil, adminActor(), "3")

		handler.DeleteReportHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestReportHandler_AdminDeleteReportHandler(t *testing.T) {
	handler, mockUseCase := setupReportTestHandler(t)

	mockUseCase.On("AdminDelete", mock.Anything, *adminActor(), int64(3)).Return(nil).Once()

	c, w := createTestContext(http.MethodDelete, "/api/admin/reports/3", nil, adminActor(), "3")

	handler.AdminDeleteReportHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
