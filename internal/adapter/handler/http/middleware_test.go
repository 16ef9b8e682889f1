package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/velstore/orderflow/internal/core/domain"
	"github.com/velstore/orderflow/internal/core/port"
	"github.com/velstore/orderflow/internal/core/port/mock"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// echoActor exposes the resolved actor so tests can assert on it.
func echoActor() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		actor := getActor(ctx)
		ctx.JSON(http.StatusOK, gin.H{
			"mode":   string(actor.Mode),
			"userId": actor.UserID,
			"role":   string(actor.Role),
		})
	}
}

func perform(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSessionAuth(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		mock       func(tokens *mock.MockTokenService)
		expStatus  int
	}{
		{
			name:      "missing header",
			expStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Bearer",
			expStatus:  http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			expStatus:  http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			mock: func(tokens *mock.MockTokenService) {
				tokens.EXPECT().VerifySessionToken("bad-token").Return(nil, domain.ErrInvalidToken)
			},
			expStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid session",
			authHeader: "Bearer good-token",
			mock: func(tokens *mock.MockTokenService) {
				tokens.EXPECT().VerifySessionToken("good-token").
					Return(&port.SessionPayload{UserID: "user-1", Role: domain.RoleCustomer}, nil)
			},
			expStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)
			tokens := mock.NewMockTokenService(ctrl)
			if test.mock != nil {
				test.mock(tokens)
			}

			r := gin.New()
			r.GET("/probe", sessionAuth(tokens, zap.NewNop()), echoActor())

			rec := perform(r, "/probe", test.authHeader)

			assert.Equal(t, test.expStatus, rec.Code)
			if test.expStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"mode":"session"`)
				assert.Contains(t, rec.Body.String(), `"userId":"user-1"`)
			} else {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}

func TestOptionalSessionAuth(t *testing.T) {
	t.Run("no header resolves an anonymous actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		tokens := mock.NewMockTokenService(ctrl)

		r := gin.New()
		r.GET("/probe", optionalSessionAuth(tokens, zap.NewNop()), echoActor())

		rec := perform(r, "/probe", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"mode":"none"`)
	})

	t.Run("present but invalid header still fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		tokens := mock.NewMockTokenService(ctrl)
		tokens.EXPECT().VerifySessionToken("stale").Return(nil, domain.ErrExpiredToken)

		r := gin.New()
		r.GET("/probe", optionalSessionAuth(tokens, zap.NewNop()), echoActor())

		rec := perform(r, "/probe", "Bearer stale")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid session resolves the session actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		tokens := mock.NewMockTokenService(ctrl)
		tokens.EXPECT().VerifySessionToken("good-token").
			Return(&port.SessionPayload{UserID: "user-1", Role: domain.RoleAdmin}, nil)

		r := gin.New()
		r.GET("/probe", optionalSessionAuth(tokens, zap.NewNop()), echoActor())

		rec := perform(r, "/probe", "Bearer good-token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"ADMIN"`)
	})
}

func TestAdminOnly(t *testing.T) {
	router := func(t *testing.T, role domain.Role) *gin.Engine {
		t.Helper()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		tokens := mock.NewMockTokenService(ctrl)
		tokens.EXPECT().VerifySessionToken(gomock.Any()).
			Return(&port.SessionPayload{UserID: "u", Role: role}, nil)

		r := gin.New()
		r.GET("/probe", sessionAuth(tokens, zap.NewNop()), adminOnly(zap.NewNop()), echoActor())
		return r
	}

	t.Run("admin passes", func(t *testing.T) {
		rec := perform(router(t, domain.RoleAdmin), "/probe", "Bearer tok")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("super admin passes", func(t *testing.T) {
		rec := perform(router(t, domain.RoleSuperAdmin), "/probe", "Bearer tok")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer gets 403", func(t *testing.T) {
		rec := perform(router(t, domain.RoleCustomer), "/probe", "Bearer tok")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
