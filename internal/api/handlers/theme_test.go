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

// ThemeHandlerTestSuite defines the test suite for ThemeHandler
type ThemeHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockThemeServiceInterface
	handler     *handlers.ThemeHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ThemeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockThemeServiceInterface(suite.ctrl)
	suite.handler = handlers.NewThemeHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	theme := suite.httpSuite.Router.Group("/api/v1/theme")
	{
		theme.GET("", suite.handler.GetTheme)
		theme.PUT("", suite.handler.UpdateTheme)
		theme.POST("/rotate", suite.handler.RotateImage)
	}
}

// TearDownTest cleans up after each test
func (suite *ThemeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ThemeHandlerTestSuite) TestGetTheme() {
	suite.mockService.EXPECT().Get().Return(models.DefaultTheme())

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/theme", nil)

	var response models.ThemeConfig
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.DefaultTheme(), response)
}

func (suite *ThemeHandlerTestSuite) TestUpdateTheme() {
	suite.T().Run("Success", func(t *testing.T) {
		color := "#000000"
		updated := models.DefaultTheme()
		updated.PrimaryColor = color

		suite.mockService.EXPECT().
			Update(&service.UpdateThemeRequest{PrimaryColor: &color}).
			Return(updated, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/theme", map[string]string{"primaryColor": color})

		var response models.ThemeConfig
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, color, response.PrimaryColor)
	})

	suite.T().Run("InvalidColor", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(gomock.Any()).
			Return(models.ThemeConfig{}, apperrors.NewValidationError("theme", "primaryColor must be a hex color"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/theme", map[string]string{"primaryColor": "green"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "validation error")
	})
}

func (suite *ThemeHandlerTestSuite) TestRotateImage() {
	suite.T().Run("Next", func(t *testing.T) {
		rotated := models.DefaultTheme()
		rotated.HeaderImageURL = models.PresetHeaderImages[3]
		suite.mockService.EXPECT().RotateImage(service.RotateNext).Return(rotated, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/theme/rotate", map[string]string{"direction": "next"})

		var response models.ThemeConfig
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.PresetHeaderImages[3], response.HeaderImageURL)
	})

	suite.T().Run("BadDirection", func(t *testing.T) {
		suite.mockService.EXPECT().
			RotateImage(service.RotateDirection("up")).
			Return(models.ThemeConfig{}, apperrors.ErrInvalidRotation)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/theme/rotate", map[string]string{"direction": "up"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "direction must be next or prev")
	})

	suite.T().Run("MissingDirection", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/theme/rotate", map[string]string{})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})
}

func TestThemeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ThemeHandlerTestSuite))
}
