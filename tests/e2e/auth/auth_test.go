//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"karoca-backend/internal/handler/dto/request"
	"karoca-backend/tests/common/authtest"
	"karoca-backend/tests/common/dbtest"
	"karoca-backend/tests/common/httptest"
	"karoca-backend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const loginURL = "/api/auth/login"

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestLogin() {
	s.Run("issues an access token cookie on success", func() {
		dbtest.CreateTestStaff(s.T(), s.DB, "manager@karoca.hr", "manager")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "manager@karoca.hr", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(s.T(), accessCookie)
		require.NotEmpty(s.T(), accessCookie.Value)
		require.True(s.T(), accessCookie.HttpOnly)
	})

	s.Run("rejects a wrong password", func() {
		dbtest.CreateTestStaff(s.T(), s.DB, "manager@karoca.hr", "manager")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "manager@karoca.hr", Password: "wrongpassword"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("unknown email looks identical to a wrong password", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ghost@karoca.hr", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestSession() {
	s.Run("me returns the logged-in staff profile", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "manager@karoca.hr", "manager")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		require.Contains(s.T(), w.Body.String(), "manager@karoca.hr")
	})

	s.Run("me without a token is unauthorized", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("logout clears the cookie", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "manager@karoca.hr", "manager")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/logout", nil, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(s.T(), cleared)
		require.Empty(s.T(), cleared.Value)
	})
}
