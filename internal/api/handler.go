package api

import (
	"net/http"
	"strconv"
	"time"

	"cart-service/internal/models"
	"cart-service/internal/store"
	"cart-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler exposes the dispatch/selector surface over HTTP. Mutations
// are dispatched to the store and acknowledged without waiting for the
// reducer loop; reads derive view models from the current snapshot.
type Handler struct {
	store     *store.Store
	selectors *store.Selectors
}

// NewHandler creates a new HTTP handler
func NewHandler(st *store.Store, selectors *store.Selectors) *Handler {
	return &Handler{
		store:     st,
		selectors: selectors,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.getProducts)
		v1.POST("/products/refresh", h.refreshProducts)
		v1.GET("/cart", h.getCart)
		v1.POST("/cart/items", h.addProductToCart)
		v1.DELETE("/cart/items/:id", h.removeProductFromCart)
		v1.DELETE("/cart", h.clearCart)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// getProducts returns the catalog and its loading flag
func (h *Handler) getProducts(c *gin.Context) {
	state := h.store.State()

	c.JSON(http.StatusOK, gin.H{
		"products": h.selectors.Products(state),
		"loading":  h.selectors.IsProductsLoading(state),
	})
}

// getCart returns the cart line-items with quantity sum and total price
func (h *Handler) getCart(c *gin.Context) {
	state := h.store.State()

	c.JSON(http.StatusOK, gin.H{
		"items":        h.selectors.CartEntities(state),
		"quantity_sum": h.selectors.CartQuantitySum(state),
		"total_price":  h.selectors.CartTotalPrice(state),
	})
}

// refreshProducts dispatches a catalog fetch request
func (h *Handler) refreshProducts(c *gin.Context) {
	h.store.Dispatch(models.FetchProductsNext{})

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// AddProductRequest is the add-to-cart payload
type AddProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// addProductToCart dispatches an add action
func (h *Handler) addProductToCart(c *gin.Context) {
	var req AddProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	h.store.Dispatch(models.AddProductToCart{ProductID: models.ProductID(req.ProductID)})

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// removeProductFromCart dispatches a remove action; ?absolute=true
// removes the product unconditionally instead of decrementing
func (h *Handler) removeProductFromCart(c *gin.Context) {
	productID := c.Param("id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	absolute, _ := strconv.ParseBool(c.DefaultQuery("absolute", "false"))

	h.store.Dispatch(models.RemoveProductFromCart{
		ProductID: models.ProductID(productID),
		Absolute:  absolute,
	})

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// clearCart dispatches a clear action
func (h *Handler) clearCart(c *gin.Context) {
	h.store.Dispatch(models.ClearCart{})

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
