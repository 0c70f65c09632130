package handlers_test

import (
	"net/http"
	"testing"

	"outing-board-backend/internal/api/handlers"
	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/mocks"
	"outing-board-backend/internal/models"
	"outing-board-backend/internal/service"
	"outing-board-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AnnouncementHandlerTestSuite defines the test suite for AnnouncementHandler
type AnnouncementHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAnnouncementServiceInterface
	handler     *handlers.AnnouncementHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AnnouncementHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAnnouncementServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAnnouncementHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	announcement := suite.httpSuite.Router.Group("/api/v1/announcement")
	{
		announcement.GET("", suite.handler.GetAnnouncement)
		announcement.POST("", suite.handler.PublishAnnouncement)
		announcement.PUT("/duration", suite.handler.SetDuration)
		announcement.DELETE("", suite.handler.HideAnnouncement)
	}
}

// TearDownTest cleans up after each test
func (suite *AnnouncementHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AnnouncementHandlerTestSuite) TestGetAnnouncement() {
	suite.mockService.EXPECT().Get().Return(models.AnnouncementState{Duration: 15})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/announcement", nil)

	var response models.AnnouncementState
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.False(response.IsActive)
	suite.Equal(15, response.Duration)
}

func (suite *AnnouncementHandlerTestSuite) TestPublishAnnouncement() {
	suite.T().Run("Success", func(t *testing.T) {
		req := &service.PublishAnnouncementRequest{Message: "Hoy salimos tarde", Duration: 20}
		suite.mockService.EXPECT().
			Publish(req).
			Return(models.AnnouncementState{Message: req.Message, IsActive: true, Duration: 20}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/announcement", req)

		var response models.AnnouncementState
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.IsActive)
		assert.Equal(t, "Hoy salimos tarde", response.Message)
	})

	suite.T().Run("EmptyMessage", func(t *testing.T) {
		suite.mockService.EXPECT().
			Publish(gomock.Any()).
			Return(models.AnnouncementState{}, apperrors.ErrEmptyAnnouncement)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/announcement", map[string]interface{}{
			"message":  "  ",
			"duration": 15,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "announcement message is required")
	})
}

func (suite *AnnouncementHandlerTestSuite) TestSetDuration() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			SetDuration(30).
			Return(models.AnnouncementState{Duration: 30}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/announcement/duration", map[string]int{"duration": 30})

		var response models.AnnouncementState
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 30, response.Duration)
	})

	suite.T().Run("OutOfRange", func(t *testing.T) {
		suite.mockService.EXPECT().
			SetDuration(90).
			Return(models.AnnouncementState{}, apperrors.ErrInvalidDuration)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/announcement/duration", map[string]int{"duration": 90})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "duration must be between 5 and 60 seconds")
	})

	suite.T().Run("MissingDuration", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/announcement/duration", map[string]int{})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})
}

func (suite *AnnouncementHandlerTestSuite) TestHideAnnouncement() {
	suite.mockService.EXPECT().Hide().Return(models.AnnouncementState{Message: "x", Duration: 15})

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/announcement", nil)

	var response models.AnnouncementState
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.False(response.IsActive)
}

func TestAnnouncementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementHandlerTestSuite))
}
