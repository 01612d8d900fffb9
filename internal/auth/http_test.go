package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Profile{}, &Session{}))
	return db
}

func newRouter(t *testing.T, db *gorm.DB) (*gin.Engine, *Repo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	repo := NewRepo(db)
	RegisterRoutes(r, repo, Options{SessionTTL: time.Hour, CookieSecure: false})
	return r, repo
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cookieFrom(w *httptest.ResponseRecorder) string {
	sc := w.Header().Get("Set-Cookie")
	if i := strings.Index(sc, ";"); i > 0 {
		return sc[:i]
	}
	return sc
}

func registerReq(username string) map[string]any {
	return map[string]any{
		"username":   username,
		"email":      username + "@example.com",
		"password":   "password123",
		"first_name": "Test",
		"last_name":  "User",
		"phone":      "076123456",
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	r, _ := newRouter(t, newTestDB(t))
	req := httptest.NewRequest(http.MethodPost, "/register/", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_Validation(t *testing.T) {
	r, _ := newRouter(t, newTestDB(t))

	w := doJSON(r, http.MethodPost, "/register/", map[string]any{"username": "", "email": "a@b.se", "password": "password123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/register/", map[string]any{"username": "sia", "email": "not-an-email", "password": "password123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/register/", map[string]any{"username": "sia", "email": "sia@example.com", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_CreatesUserAndProfile(t *testing.T) {
	db := newTestDB(t)
	r, repo := newRouter(t, db)

	w := doJSON(r, http.MethodPost, "/register/", registerReq("fatmata"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, cookieFrom(w), "registration should start a session")

	u, err := repo.ByUsername(context.Background(), "fatmata")
	require.NoError(t, err)
	assert.Equal(t, "fatmata@example.com", u.Email)
	assert.False(t, u.IsAdmin)
	assert.NotEqual(t, "password123", u.PasswordHash)

	p, err := repo.ProfileOf(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "076123456", p.Phone)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	r, _ := newRouter(t, newTestDB(t))
	w := doJSON(r, http.MethodPost, "/register/", registerReq("moses"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/register/", registerReq("moses"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_And_Logout(t *testing.T) {
	db := newTestDB(t)
	r, repo := newRouter(t, db)
	doJSON(r, http.MethodPost, "/register/", registerReq("amara"))

	w := doJSON(r, http.MethodPost, "/login/", map[string]any{"username": "amara", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/login/", map[string]any{"username": "amara", "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := cookieFrom(w)
	require.NotEmpty(t, cookie)

	tok := strings.TrimPrefix(cookie, CookieName+"=")
	u, err := repo.UserBySession(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "amara", u.Username)

	// Logout invalidates the session.
	req := httptest.NewRequest(http.MethodPost, "/logout/", nil)
	req.Header.Set("Cookie", cookie)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err = repo.UserBySession(context.Background(), tok)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequireUser_RejectsAnonymous(t *testing.T) {
	db := newTestDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	repo := NewRepo(db)
	r.GET("/protected", RequireUser(repo), func(c *gin.Context) {
		u, ok := UserFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": u.Username})
	})

	w := doJSON(r, http.MethodGet, "/protected", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_NonAdminNeverReachesHandler(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo(db)
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlerRan := false
	r.POST("/admin-only", RequireAdmin(repo), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	fan := User{Username: "fan", Email: "fan@example.com", PasswordHash: "x"}
	require.NoError(t, repo.CreateUser(context.Background(), &fan, &Profile{}))
	s, err := repo.CreateSession(context.Background(), fan.ID, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
	req.Header.Set("Cookie", CookieName+"="+s.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerRan, "route handler must not run before the admin check")

	boss := User{Username: "boss", Email: "boss@example.com", PasswordHash: "x", IsAdmin: true}
	require.NoError(t, repo.CreateUser(context.Background(), &boss, &Profile{}))
	s, err = repo.CreateSession(context.Background(), boss.ID, time.Hour)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/admin-only", nil)
	req.Header.Set("Cookie", CookieName+"="+s.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handlerRan)
}

func TestSessions_Expire(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo(db)
	u := User{Username: "old", Email: "old@example.com", PasswordHash: "x"}
	require.NoError(t, repo.CreateUser(context.Background(), &u, &Profile{}))

	s, err := repo.CreateSession(context.Background(), u.ID, -time.Minute)
	require.NoError(t, err)

	_, err = repo.UserBySession(context.Background(), s.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}
