package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const CookieName = "session_token"

const userKey = "auth.user"

// Options carries the session knobs the handlers need; values come from
// the config package so tests can override them.
type Options struct {
	SessionTTL   time.Duration
	CookieSecure bool
}

func RegisterRoutes(r *gin.Engine, repo *Repo, opts Options) {
	r.POST("/register/", func(c *gin.Context) {
		var req struct {
			Username  string `json:"username"`
			Email     string `json:"email"`
			Password  string `json:"password"`
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Phone     string `json:"phone"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username required"})
			return
		}
		if req.Email == "" || !strings.Contains(req.Email, "@") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return
		}
		if len(req.Password) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password too short (min 8)"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "hash failed"})
			return
		}

		u := User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
		}
		p := Profile{Phone: req.Phone}
		if err := repo.CreateUser(c.Request.Context(), &u, &p); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				c.JSON(http.StatusConflict, gin.H{"error": "username already in use"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Registration logs the user straight in.
		s, err := repo.CreateSession(c.Request.Context(), u.ID, opts.SessionTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session failed"})
			return
		}
		setSessionCookie(c, s, opts)
		c.JSON(http.StatusCreated, gin.H{"id": u.ID, "username": u.Username})
	})

	r.POST("/login/", func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing username or password"})
			return
		}

		u, err := repo.ByUsername(c.Request.Context(), req.Username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		s, err := repo.CreateSession(c.Request.Context(), u.ID, opts.SessionTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session failed"})
			return
		}
		setSessionCookie(c, s, opts)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.POST("/logout/", func(c *gin.Context) {
		tok, err := c.Cookie(CookieName)
		if err == nil && tok != "" {
			_ = repo.DeleteSession(c.Request.Context(), tok)
		}
		c.SetSameSite(http.SameSiteLaxMode)
		// overwrite with expired cookie
		c.SetCookie(CookieName, "", -1, "/", "", opts.CookieSecure, true)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func setSessionCookie(c *gin.Context, s *Session, opts Options) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, s.Token, maxAge, "/", "", opts.CookieSecure, true)
}

// RequireUser resolves the session cookie and stores the user in the
// request context. The authenticated identity is always read from
// here, never from any ambient state. The handler must not call
// c.Next(): RequireAdmin invokes it directly, and a nested Next would
// run the route handler before the admin check.
func RequireUser(repo *Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(CookieName)
		if err != nil || tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		u, err := repo.UserBySession(c.Request.Context(), tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(userKey, u)
	}
}

// RequireAdmin layers an admin check on top of RequireUser.
func RequireAdmin(repo *Repo) gin.HandlerFunc {
	requireUser := RequireUser(repo)
	return func(c *gin.Context) {
		requireUser(c)
		if c.IsAborted() {
			return
		}
		if u, ok := UserFrom(c); !ok || !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin required"})
			return
		}
	}
}

// UserFrom returns the authenticated user set by RequireUser.
func UserFrom(c *gin.Context) (*User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*User)
	return u, ok
}
