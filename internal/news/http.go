package news

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/borangersfc/ticketing/internal/auth"
	"github.com/borangersfc/ticketing/internal/pagination"
)

func RegisterRoutes(r *gin.Engine, repo *Repo, admin gin.HandlerFunc) {
	r.GET("/news/", func(c *gin.Context) {
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
			"news":  list,
			"page":  page.Number,
			"pages": page.Pages,
			"count": count,
		})
	})

	r.GET("/news/:news_id/", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("news_id"), 10, 64)
		a, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, a)
	})

	api := r.Group("/api/admin/news", admin)
	{
		api.POST("", func(c *gin.Context) {
			var req struct {
				Title      string `json:"title"`
				Content    string `json:"content"`
				Category   string `json:"category"`
				Image      string `json:"image"`
				IsFeatured bool   `json:"is_featured"`
			}
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			if req.Title == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
				return
			}
			if req.Category == "" {
				req.Category = CategoryClubNews
			}
			if !ValidCategory(req.Category) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
				return
			}
			u, _ := auth.UserFrom(c)
			a := Article{
				Title:       req.Title,
				Content:     req.Content,
				Category:    req.Category,
				AuthorID:    u.ID,
				Image:       req.Image,
				PublishDate: time.Now(),
				IsFeatured:  req.IsFeatured,
			}
			if err := repo.Create(c.Request.Context(), &a); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusCreated, a)
		})

		api.PATCH("/:id", func(c *gin.Context) {
			id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
			a, err := repo.Get(c.Request.Context(), id)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			var req struct {
				Title      *string `json:"title"`
				Content    *string `json:"content"`
				Category   *string `json:"category"`
				Image      *string `json:"image"`
				IsFeatured *bool   `json:"is_featured"`
			}
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			if req.Title != nil {
				a.Title = *req.Title
			}
			if req.Content != nil {
				a.Content = *req.Content
			}
			if req.Category != nil {
				if !ValidCategory(*req.Category) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
					return
				}
				a.Category = *req.Category
			}
			if req.Image != nil {
				a.Image = *req.Image
			}
			if req.IsFeatured != nil {
				a.IsFeatured = *req.IsFeatured
			}
			if err := repo.Update(c.Request.Context(), a); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, a)
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
