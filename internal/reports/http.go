package reports

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/borangersfc/ticketing/internal/auth"
)

func RegisterRoutes(r *gin.Engine, repo *Repo, admin gin.HandlerFunc) {
	api := r.Group("/api/admin/reports", admin)
	{
		api.GET("", func(c *gin.Context) {
			list, err := repo.List(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, list)
		})

		api.GET("/:id", func(c *gin.Context) {
			id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
			rep, err := repo.Get(c.Request.Context(), id)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusOK, rep)
		})

		api.POST("", func(c *gin.Context) {
			var req struct {
				ReportType string          `json:"report_type"`
				MatchID    *int64          `json:"match_id"`
				Data       json.RawMessage `json:"data"`
			}
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			if !ValidType(req.ReportType) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report type"})
				return
			}
			if len(req.Data) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "data required"})
				return
			}
			u, _ := auth.UserFrom(c)
			rep := Report{
				ReportType:    req.ReportType,
				MatchID:       req.MatchID,
				Data:          req.Data,
				GeneratedDate: time.Now(),
				GeneratedByID: u.ID,
			}
			if err := repo.Create(c.Request.Context(), &rep); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusCreated, rep)
		})
	}
}
