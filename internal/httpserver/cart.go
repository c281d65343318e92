package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"shopfront/internal/domain"
	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func getCartHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c)
		priced, err := carts.Priced(c.Request.Context(), sess.SessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load cart"})
			return
		}
		c.JSON(http.StatusOK, toPricedCartResponse(priced))
	}
}

func addCartItemHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
			return
		}

		sess := sessionFromContext(c)
		if _, err := carts.Add(c.Request.Context(), sess.SessionID, req.ProductID, req.Quantity); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
			return
		}

		respondPricedCart(c, carts, sess.SessionID)
	}
}

func setCartItemHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		sess := sessionFromContext(c)
		if _, err := carts.SetQuantity(c.Request.Context(), sess.SessionID, productID, req.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
			return
		}

		respondPricedCart(c, carts, sess.SessionID)
	}
}

func removeCartItemHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		sess := sessionFromContext(c)
		if _, err := carts.Remove(c.Request.Context(), sess.SessionID, productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
			return
		}

		respondPricedCart(c, carts, sess.SessionID)
	}
}

func respondPricedCart(c *gin.Context, carts cartService, sessionID string) {
	priced, err := carts.Priced(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load cart"})
		return
	}
	c.JSON(http.StatusOK, toPricedCartResponse(priced))
}

func productIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return id, true
}
