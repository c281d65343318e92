package httpserver

import (
	"context"
	"log"

	"shopfront/internal/domain"
	checkoutsvc "shopfront/internal/service/checkout"
	identitysvc "shopfront/internal/service/identity"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps are the collaborators the handlers call into.
type Deps struct {
	CartSvc     cartService
	CheckoutSvc checkoutService
	OrderRepo   orderRepo
	IdentitySvc *identitysvc.Service
}

type cartService interface {
	Priced(ctx context.Context, sessionID string) (domain.PricedCart, error)
	Add(ctx context.Context, sessionID string, productID int64, quantity int) (domain.RawCart, error)
	SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (domain.RawCart, error)
	Remove(ctx context.Context, sessionID string, productID int64) (domain.RawCart, error)
}

type checkoutService interface {
	Checkout(ctx context.Context, sessionID string, in checkoutsvc.Input, userID *int64) (*domain.Order, error)
}

type orderRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/session", issueSessionHandler(deps.IdentitySvc))

	authed := router.Group("/", sessionAuth(deps.IdentitySvc))
	authed.GET("/cart", getCartHandler(deps.CartSvc))
	authed.POST("/cart/items", addCartItemHandler(deps.CartSvc))
	authed.PUT("/cart/items/:productID", setCartItemHandler(deps.CartSvc))
	authed.DELETE("/cart/items/:productID", removeCartItemHandler(deps.CartSvc))
	authed.POST("/checkout", checkoutHandler(deps.CheckoutSvc))
	authed.GET("/orders/:id", getOrderHandler(deps.OrderRepo))

	return router
}
