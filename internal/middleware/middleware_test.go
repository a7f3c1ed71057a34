package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payroll_tracker/internal/domain"
	"payroll_tracker/internal/repository"
	"payroll_tracker/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-secret"

type staticRevocations struct {
	revoked map[string]bool
	err     error
}

func (s staticRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	return s.revoked[id], s.err
}

type stubUsers struct {
	repository.UserRepository
	users map[uint]domain.User
}

func (s stubUsers) GetByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(revocations RevocationChecker, users repository.UserRepository) *gin.Engine {
	r := gin.New()
	r.GET("/private", JWTAuthMiddleware(secret, revocations), ActiveUserMiddleware(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(ContextUserID)})
	})
	return r
}

func call(r http.Handler, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	users := stubUsers{users: map[uint]domain.User{1: {ID: 1, Username: "operator"}}}
	token, err := utils.GenerateJWT(1, "operator", secret, time.Hour)
	require.NoError(t, err)
	claims, err := utils.ParseJWT(token, secret)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := call(newRouter(staticRevocations{}, users), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		w := call(newRouter(staticRevocations{}, users), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := call(newRouter(staticRevocations{}, users), "Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		revs := staticRevocations{revoked: map[string]bool{claims.ID: true}}
		w := call(newRouter(revs, users), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("denylist unavailable", func(t *testing.T) {
		w := call(newRouter(staticRevocations{err: errors.New("down")}, users), "Bearer "+token)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("user removed", func(t *testing.T) {
		w := call(newRouter(staticRevocations{}, stubUsers{users: map[uint]domain.User{}}), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestActiveUserRejectsMalformedUserID(t *testing.T) {
	// user 0 exists so only the type check can reject the request
	users := stubUsers{users: map[uint]domain.User{0: {Username: "zero"}}}
	r := gin.New()
	r.GET("/private", func(c *gin.Context) {
		c.Set(ContextUserID, "1")
		c.Next()
	}, ActiveUserMiddleware(users), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := call(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}
