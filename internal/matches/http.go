package matches

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/borangersfc/ticketing/internal/pagination"
)

type matchReq struct {
	HomeTeam    *string    `json:"home_team"`
	AwayTeam    *string    `json:"away_team"`
	Kickoff     *time.Time `json:"date_time"`
	Venue       *string    `json:"venue"`
	Status      *string    `json:"status"`
	HomeScore   *int       `json:"home_score"`
	AwayScore   *int       `json:"away_score"`
	Description *string    `json:"description"`
}

func (req matchReq) apply(m *Match) {
	if req.HomeTeam != nil {
		m.HomeTeam = *req.HomeTeam
	}
	if req.AwayTeam != nil {
		m.AwayTeam = *req.AwayTeam
	}
	if req.Kickoff != nil {
		m.Kickoff = *req.Kickoff
	}
	if req.Venue != nil {
		m.Venue = *req.Venue
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
	if req.HomeScore != nil {
		m.HomeScore = *req.HomeScore
	}
	if req.AwayScore != nil {
		m.AwayScore = *req.AwayScore
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
}

// RegisterRoutes mounts the public fixtures listing plus the admin
// fixture management endpoints.
func RegisterRoutes(r *gin.Engine, repo *Repo, admin gin.HandlerFunc) {
	r.GET("/fixtures/", func(c *gin.Context) {
		count, err := repo.Count(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		page := pagination.Paginate(pagination.FromQuery(c), count)
		list, err := repo.List(c.Request.Context(), page.Offset, page.Limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"matches": list,
			"page":    page.Number,
			"pages":   page.Pages,
			"count":   count,
		})
	})

	api := r.Group("/api/admin/matches", admin)
	{
		api.POST("", func(c *gin.Context) {
			var req matchReq
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			var m Match
			m.Status = StatusUpcoming
			req.apply(&m)
			if m.HomeTeam == "" || m.AwayTeam == "" || m.Kickoff.IsZero() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "home_team, away_team and date_time are required"})
				return
			}
			if !ValidStatus(m.Status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
				return
			}
			if err := repo.Create(c.Request.Context(), &m); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusCreated, m)
		})

		api.PATCH("/:id", func(c *gin.Context) {
			id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
			m, err := repo.Get(c.Request.Context(), id)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			var req matchReq
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			req.apply(m)
			if !ValidStatus(m.Status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
				return
			}
			if err := repo.Update(c.Request.Context(), m); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, m)
		})

		api.DELETE("/:id", func(c *gin.Context) {
			id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
			if err := repo.Delete(c.Request.Context(), id); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.Status(http.StatusNoContent)
		})
	}
}
