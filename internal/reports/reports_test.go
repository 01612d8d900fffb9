package reports

import (
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

	"github.com/borangersfc/ticketing/internal/auth"
	"github.com/borangersfc/ticketing/internal/matches"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&auth.User{}, &auth.Profile{}, &auth.Session{}, &matches.Match{}, &Report{}))
	return db
}

func adminCookie(t *testing.T, db *gorm.DB) string {
	t.Helper()
	u := auth.User{Username: "boss", Email: "boss@example.com", PasswordHash: "x", IsAdmin: true}
	require.NoError(t, db.Create(&u).Error)
	s, err := auth.NewRepo(db).CreateSession(context.Background(), u.ID, time.Hour)
	require.NoError(t, err)
	return auth.CookieName + "=" + s.Token
}

func newRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, NewRepo(db), auth.RequireAdmin(auth.NewRepo(db)))
	return r
}

func TestReports_PayloadRoundTrip(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(t, db)
	cookie := adminCookie(t, db)

	body := `{"report_type":"sales","data":{"tickets_sold":120,"by_category":{"VIP":20,"Regular":100}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	// The stored payload comes back structurally identical.
	got, err := NewRepo(db).Get(context.Background(), created.ID)
	require.NoError(t, err)
	var payload struct {
		TicketsSold int            `json:"tickets_sold"`
		ByCategory  map[string]int `json:"by_category"`
	}
	require.NoError(t, json.Unmarshal(got.Data, &payload))
	assert.Equal(t, 120, payload.TicketsSold)
	assert.Equal(t, 20, payload.ByCategory["VIP"])
	assert.Equal(t, TypeSales, got.ReportType)
	assert.Nil(t, got.MatchID)
}

func TestReports_InvalidType(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(t, db)
	cookie := adminCookie(t, db)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/reports",
		strings.NewReader(`{"report_type":"weather","data":{}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReports_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo(db)
	u := auth.User{Username: "gen", Email: "gen@example.com", PasswordHash: "x", IsAdmin: true}
	require.NoError(t, db.Create(&u).Error)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rep := Report{
			ReportType:    TypeRevenue,
			Data:          json.RawMessage(`{}`),
			GeneratedDate: base.AddDate(0, 0, i),
			GeneratedByID: u.ID,
		}
		require.NoError(t, repo.Create(context.Background(), &rep))
	}

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].GeneratedDate.After(list[1].GeneratedDate))
	assert.True(t, list[1].GeneratedDate.After(list[2].GeneratedDate))
}
