//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"karoca-backend/internal/handler/api"
	"karoca-backend/internal/handler/dto/request"
	"karoca-backend/internal/pkg/config"
	"karoca-backend/internal/pkg/jwt"
	"karoca-backend/internal/usecase"
	"karoca-backend/internal/usecase/queries"
	"karoca-backend/tests/common/httptest"
	usecasemock "karoca-backend/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockUseCase, jwtService, config.NewTestConfig().Cookie)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("staff_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) staffView() *queries.AuthorizedStaffView {
	return &queries.AuthorizedStaffView{
		ID:       uuid.New(),
		Email:    "manager@example.com",
		Role:     "manager",
		IsActive: true,
	}
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	view := s.staffView()
	s.mockUseCase.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return("signed.jwt.token", view, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
		request.LoginRequest{Email: "manager@example.com", Password: "password123"}, "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "signed.jwt.token")

	accessCookie := httptest.ExtractCookie(w, "access_token")
	s.Require().NotNil(accessCookie)
	s.Equal("signed.jwt.token", accessCookie.Value)
	s.True(accessCookie.HttpOnly)
}

func (s *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	s.mockUseCase.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return("", nil, usecase.ErrInvalidCredentials)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
		request.LoginRequest{Email: "manager@example.com", Password: "wrongpassword"}, "")

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerTestSuite) TestLogin_UnknownStaffLooksLikeBadPassword() {
	s.mockUseCase.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return("", nil, usecase.ErrStaffNotFound)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
		request.LoginRequest{Email: "nobody@example.com", Password: "password123"}, "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Invalid email or password")
}

func (s *AuthHandlerTestSuite) TestLogin_InactiveStaff() {
	s.mockUseCase.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return("", nil, usecase.ErrStaffInactive)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
		request.LoginRequest{Email: "former@example.com", Password: "password123"}, "")

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *AuthHandlerTestSuite) TestLogin_MalformedBody() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
		gin.H{"email": "not-an-email"}, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuthHandlerTestSuite) TestLogout_ClearsCookie() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, w.Code)
	accessCookie := httptest.ExtractCookie(w, "access_token")
	s.Require().NotNil(accessCookie)
	s.Empty(accessCookie.Value)
}

func (s *AuthHandlerTestSuite) TestMe_Authenticated() {
	view := s.staffView()
	s.mockUseCase.EXPECT().
		GetCurrentStaff(gomock.Any(), gomock.Any()).
		Return(view, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "manager@example.com")
}

func (s *AuthHandlerTestSuite) TestMe_NotAuthenticated() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

	s.Equal(http.StatusUnauthorized, w.Code)
}
