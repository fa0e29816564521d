package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/handlers"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "expense-tracker-test"
)

// --- Test Suite ---
type RecurringHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockRecurringService *MockRecurringService
	mockCategoryService  *MockCategoryService
	token                string
}

func newTestRouter(s *suite.Suite, services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{
		JWTSecret:    testSecret,
		JWTIssuer:    testIssuer,
		RateLimit:    "1000-M",
		IsProduction: true,
	}
	s.Require().NoError(handlers.RegisterRoutes(router, cfg, services, nil))
	return router
}

func generateTestToken(s *suite.Suite) string {
	token, _, err := utils.IssueAccessToken("admin", testSecret, testIssuer, time.Hour, time.Now())
	s.Require().NoError(err)
	return token
}

func (suite *RecurringHandlerTestSuite) SetupTest() {
	suite.mockRecurringService = new(MockRecurringService)
	suite.mockCategoryService = new(MockCategoryService)
	suite.router = newTestRouter(&suite.Suite, &portssvc.ServiceContainer{
		Recurring: suite.mockRecurringService,
		Category:  suite.mockCategoryService,
	})
	suite.token = generateTestToken(&suite.Suite)
}

func (suite *RecurringHandlerTestSuite) TearDownTest() {
	suite.mockRecurringService.AssertExpectations(suite.T())
}

func (suite *RecurringHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleSchedule() *domain.RecurringSchedule {
	return &domain.RecurringSchedule{
		ScheduleID:  "sched-1",
		Type:        domain.Expense,
		Amount:      decimal.NewFromInt(500000),
		CategoryID:  "cat-rent",
		Category:    &domain.CategoryRef{CategoryID: "cat-rent", Name: "Rent"},
		Account:     domain.AccountBank,
		Currency:    "LAK",
		Recurrence:  domain.EveryMonth{Day: 5},
		StartDate:   calendar.New(2025, time.January, 1),
		NextDueDate: calendar.New(2025, time.April, 5),
		IsActive:    true,
	}
}

// --- Test Cases ---

func (suite *RecurringHandlerTestSuite) TestRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/recurring", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockRecurringService.AssertNotCalled(suite.T(), "ListSchedules", mock.Anything, mock.Anything)
}

func (suite *RecurringHandlerTestSuite) TestListSchedules_Success() {
	suite.mockRecurringService.On("ListSchedules", mock.Anything, mock.MatchedBy(func(p dto.ListRecurringParams) bool {
		return p.Type == "expense" && p.IsActive != nil && *p.IsActive
	})).Return([]domain.RecurringSchedule{*sampleSchedule()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/recurring?type=expense&isActive=true", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListRecurringResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Count)
	suite.Equal(domain.Monthly, resp.Schedules[0].Frequency)
	suite.Require().NotNil(resp.Schedules[0].DayOfMonth)
	suite.Equal(5, *resp.Schedules[0].DayOfMonth)
	suite.Equal("2025-04-05", resp.Schedules[0].NextDueDate)
}

func (suite *RecurringHandlerTestSuite) TestCreateSchedule_Success() {
	suite.mockRecurringService.On("CreateSchedule", mock.Anything, mock.MatchedBy(func(r dto.CreateRecurringRequest) bool {
		return r.Frequency == domain.Monthly && r.DayOfMonth != nil && *r.DayOfMonth == 5 &&
			r.Amount.Equal(decimal.NewFromInt(500000))
	})).Return(sampleSchedule(), nil).Once()

	body := `{"type":"expense","amount":500000,"categoryID":"cat-rent","frequency":"monthly","dayOfMonth":5,"startDate":"2025-01-01"}`
	w := suite.do(http.MethodPost, "/api/v1/recurring", body)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *RecurringHandlerTestSuite) TestCreateSchedule_BindingFailure() {
	w := suite.do(http.MethodPost, "/api/v1/recurring", `{"type":"expense","amount":1,"categoryID":"c","frequency":"hourly"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRecurringService.AssertNotCalled(suite.T(), "CreateSchedule", mock.Anything, mock.Anything)
}

func (suite *RecurringHandlerTestSuite) TestCreateSchedule_ValidationError() {
	suite.mockRecurringService.On("CreateSchedule", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("amount must be greater than 0")).Once()

	w := suite.do(http.MethodPost, "/api/v1/recurring", `{"type":"expense","amount":0,"categoryID":"c","frequency":"daily"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("amount must be greater than 0", resp.Error)
}

func (suite *RecurringHandlerTestSuite) TestUpdateSchedule_NotFound() {
	suite.mockRecurringService.On("UpdateSchedule", mock.Anything, "missing", mock.Anything).
		Return(nil, apperrors.NewNotFoundError("recurring schedule", "missing")).Once()

	w := suite.do(http.MethodPut, "/api/v1/recurring/missing", `{"note":"x"}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RecurringHandlerTestSuite) TestUpdateSchedule_Conflict() {
	suite.mockRecurringService.On("UpdateSchedule", mock.Anything, "sched-1", mock.Anything).
		Return(nil, apperrors.NewConflictError("recurring schedule sched-1 was modified concurrently")).Once()

	w := suite.do(http.MethodPut, "/api/v1/recurring/sched-1", `{"note":"x"}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *RecurringHandlerTestSuite) TestToggleSchedule() {
	paused := sampleSchedule()
	paused.IsActive = false
	suite.mockRecurringService.On("ToggleSchedule", mock.Anything, "sched-1").Return(paused, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/recurring/sched-1/toggle", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.RecurringResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsActive)
}

func (suite *RecurringHandlerTestSuite) TestDeleteSchedule() {
	suite.mockRecurringService.On("DeleteSchedule", mock.Anything, "sched-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/recurring/sched-1", "")

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *RecurringHandlerTestSuite) TestListUpcoming_DefaultsToSevenDays() {
	suite.mockRecurringService.On("ListUpcoming", mock.Anything, 7).Return([]domain.RecurringSchedule{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/recurring/upcoming", "")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RecurringHandlerTestSuite) TestProcessDue() {
	result := domain.NewProcessingResult(time.Now())
	result.Processed = 2
	result.Errors = append(result.Errors, domain.ProcessingFailure{ScheduleID: "sched-9", Error: "locked by another run"})
	suite.mockRecurringService.On("ProcessDue", mock.Anything, mock.AnythingOfType("time.Time")).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/recurring/process", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ProcessRecurringResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Processed 2 recurring transactions", resp.Message)
	suite.Equal(2, resp.Result.Processed)
	suite.Require().Len(resp.Result.Errors, 1)
	suite.Equal("locked by another run", resp.Result.Errors[0].Error)
}

func (suite *RecurringHandlerTestSuite) TestProcessDue_Failure() {
	suite.mockRecurringService.On("ProcessDue", mock.Anything, mock.Anything).
		Return(nil, errors.New("failed to select due schedules: connection refused")).Once()

	w := suite.do(http.MethodPost, "/api/v1/recurring/process", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to process recurring schedules")
}

func (suite *RecurringHandlerTestSuite) TestHealthIsPublic() {
	for _, path := range []string{"/health", "/api/health"} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		suite.Equal(http.StatusOK, w.Code, path)
	}
}

// --- Run Test Suite ---
func TestRecurringHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringHandlerTestSuite))
}
