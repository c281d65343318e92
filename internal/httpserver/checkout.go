package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"shopfront/internal/domain"
	checkoutsvc "shopfront/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

func checkoutHandler(checkouts checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkoutsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		sess := sessionFromContext(c)
		order, err := checkouts.Checkout(c.Request.Context(), sess.SessionID, in, sess.UserID)
		if err != nil {
			var verr *checkoutsvc.ValidationError
			switch {
			case errors.Is(err, domain.ErrEmptyCart):
				c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
			case errors.As(err, &verr):
				c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
			default:
				// Transactional create rolled back; the cart is intact
				// and the client may retry.
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not place order"})
			}
			return
		}

		c.JSON(http.StatusCreated, toOrderResponse(*order))
	}
}

func getOrderHandler(orders orderRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		order, err := orders.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load order"})
			return
		}

		// Orders bound to a user are visible only to that user; guest
		// orders are addressable by id alone.
		sess := sessionFromContext(c)
		if order.UserID != nil && (sess.UserID == nil || *sess.UserID != *order.UserID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, toOrderResponse(*order))
	}
}
