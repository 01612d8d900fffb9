package tickets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/borangersfc/ticketing/internal/auth"
	"github.com/borangersfc/ticketing/internal/matches"
	"github.com/borangersfc/ticketing/internal/monitoring"
)

// The booking form accepts 1-10 tickets per request.
const maxQuantity = 10

// RegisterRoutes mounts booking, ticket views, the mock payment
// endpoint, and admin category management.
func RegisterRoutes(r *gin.Engine, svc *Service, repo *Repo, fixtures *matches.Repo, user, admin gin.HandlerFunc) {
	// Booking form data: the match plus the selectable categories.
	r.GET("/book-ticket/:match_id/", user, func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("match_id"), 10, 64)
		m, err := fixtures.Get(c.Request.Context(), id)
		if err != nil || m.Status != matches.StatusUpcoming {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		cats, err := repo.ListCategories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"match": m, "categories": cats})
	})

	r.POST("/book-ticket/:match_id/", user, func(c *gin.Context) {
		matchID, _ := strconv.ParseInt(c.Param("match_id"), 10, 64)
		var req struct {
			CategoryID int64 `json:"category_id"`
			Quantity   int   `json:"quantity"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		if req.Quantity < 1 || req.Quantity > maxQuantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be between 1 and 10"})
			return
		}
		u, _ := auth.UserFrom(c)

		t, err := svc.Issue(c.Request.Context(), u, matchID, req.CategoryID, req.Quantity)
		switch {
		case errors.Is(err, ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		case errors.Is(err, ErrNotBookable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrBadQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		monitoring.TicketsIssued.Inc()
		c.JSON(http.StatusCreated, t)
	})

	r.GET("/ticket/:ticket_id/", user, func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("ticket_id"), 10, 64)
		u, _ := auth.UserFrom(c)
		t, err := repo.GetOwned(c.Request.Context(), id, u.ID)
		if err != nil {
			// cross-user access looks identical to a missing ticket
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, t)
	})

	r.GET("/my-tickets/", user, func(c *gin.Context) {
		u, _ := auth.UserFrom(c)
		list, err := repo.ListByUser(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tickets": list})
	})

	r.POST("/process-payment/", user, func(c *gin.Context) {
		var req struct {
			TicketID      int64  `json:"ticket_id"`
			PaymentMethod string `json:"payment_method"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
			return
		}
		u, _ := auth.UserFrom(c)
		if err := svc.ConfirmPayment(c.Request.Context(), u, req.TicketID, req.PaymentMethod); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ticket not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Payment failed"})
			return
		}
		monitoring.PaymentsConfirmed.Inc()
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment successful"})
	})

	api := r.Group("/api/admin/ticket-categories", admin)
	{
		api.GET("", func(c *gin.Context) {
			cats, err := repo.ListCategories(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, cats)
		})

		api.POST("", func(c *gin.Context) {
			var req struct {
				Name        string          `json:"name"`
				Price       decimal.Decimal `json:"price"`
				Description string          `json:"description"`
			}
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			if req.Name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
				return
			}
			if req.Price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
				return
			}
			cat := Category{Name: req.Name, Price: req.Price, Description: req.Description}
			if err := repo.CreateCategory(c.Request.Context(), &cat); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusCreated, cat)
		})

		api.PATCH("/:id", func(c *gin.Context) {
			id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
			cat, err := repo.GetCategory(c.Request.Context(), id)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			var req struct {
				Name        *string          `json:"name"`
				Price       *decimal.Decimal `json:"price"`
				Description *string          `json:"description"`
			}
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			if req.Name != nil {
				cat.Name = *req.Name
			}
			if req.Price != nil {
				if req.Price.IsNegative() {
					c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
					return
				}
				cat.Price = *req.Price
			}
			if req.Description != nil {
				cat.Description = *req.Description
			}
			if err := repo.UpdateCategory(c.Request.Context(), cat); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, cat)
		})

		api.DELETE("/:id", func(c *gin.Context) {
			id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
			if err := repo.DeleteCategory(c.Request.Context(), id); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.Status(http.StatusNoContent)
		})
	}
}
