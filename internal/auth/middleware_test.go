package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type staticSessions map[string]int64

func (s staticSessions) Create(context.Context, int64) (string, error) { return "", nil }
func (s staticSessions) Delete(context.Context, string) error          { return nil }
func (s staticSessions) GetUserID(_ context.Context, id string) (int64, bool) {
	userID, ok := s[id]
	return userID, ok
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuardRouter(sessions Sessions) *gin.Engine {
	r := gin.New()
	r.GET("/private", RequireSession(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromContext(c)})
	})
	r.GET("/guest", RequireGuest(sessions), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func serve(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireSession(t *testing.T) {
	t.Parallel()
	r := newGuardRouter(staticSessions{"good": 7})

	rec := serve(r, "/private", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = serve(r, "/private", &http.Cookie{Name: SessionCookieName, Value: "stale"})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = serve(r, "/private", &http.Cookie{Name: SessionCookieName, Value: "good"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id": 7}`, rec.Body.String())
}

func TestRequireGuest(t *testing.T) {
	t.Parallel()
	r := newGuardRouter(staticSessions{"good": 7})

	rec := serve(r, "/guest", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A stale cookie still counts as a guest.
	rec = serve(r, "/guest", &http.Cookie{Name: SessionCookieName, Value: "stale"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, "/guest", &http.Cookie{Name: SessionCookieName, Value: "good"})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))
}

func TestUserIDFromContextUnset(t *testing.T) {
	t.Parallel()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, int64(0), UserIDFromContext(c))
}
