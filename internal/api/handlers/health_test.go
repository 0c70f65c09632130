package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"outing-board-backend/internal/api/handlers"
	"outing-board-backend/internal/mocks"
	"outing-board-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HealthHandlerTestSuite defines the test suite for HealthHandler
type HealthHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockStore       *mocks.MockKeyValueRepositoryInterface
	mockSuggestions *mocks.MockSuggestionServiceInterface
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *HealthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockKeyValueRepositoryInterface(suite.ctrl)
	suite.mockSuggestions = mocks.NewMockSuggestionServiceInterface(suite.ctrl)

	handler := handlers.NewHealthHandler(suite.mockStore, suite.mockSuggestions, "sqlite")

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/health", handler.Health)
	suite.httpSuite.Router.GET("/health/ready", handler.Ready)
	suite.httpSuite.Router.GET("/health/live", handler.Live)
}

// TearDownTest cleans up after each test
func (suite *HealthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HealthHandlerTestSuite) TestHealth() {
	suite.T().Run("Healthy", func(t *testing.T) {
		suite.mockStore.EXPECT().Ping(gomock.Any()).Return(nil)
		suite.mockSuggestions.EXPECT().GeneratorConfigured().Return(false)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "sqlite: healthy", response.Services["store"])
		assert.Equal(t, "fallback only", response.Services["suggestions"])
	})

	suite.T().Run("StoreDown", func(t *testing.T) {
		suite.mockStore.EXPECT().Ping(gomock.Any()).Return(errors.New("disk gone"))
		suite.mockSuggestions.EXPECT().GeneratorConfigured().Return(true)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Services["store"], "disk gone")
		assert.Equal(t, "configured", response.Services["suggestions"])
	})
}

func (suite *HealthHandlerTestSuite) TestReady() {
	suite.mockStore.EXPECT().Ping(gomock.Any()).Return(errors.New("locked"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusServiceUnavailable, &response)
	suite.Equal(false, response["ready"])
}

func (suite *HealthHandlerTestSuite) TestLive() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(true, response["alive"])
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
