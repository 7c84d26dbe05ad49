package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/internal/config"
	"storefront/internal/metrics"
	"storefront/internal/service"
)

// Deps are the collaborators a Server is built from. Metrics may be nil.
type Deps struct {
	Products *service.ProductService
	Orders   *service.OrderService
	Users    *service.UserService
	Carts    *service.CartService
	Metrics  *metrics.Metrics

	CORS    config.CORSConfig
	Swagger bool
}

type Server struct {
	engine   *gin.Engine
	products *service.ProductService
	orders   *service.OrderService
	users    *service.UserService
	carts    *service.CartService
	metrics  *metrics.Metrics
}

func NewServer(d Deps) *Server {
	registerValidatorTags()

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(requestID(), requestLogger())
	if d.Metrics != nil {
		r.Use(instrument(d.Metrics))
	}
	// recovery stays innermost so panics are still logged and counted
	r.Use(corsMiddleware(d.CORS), recovery())

	s := &Server{
		engine:   r,
		products: d.Products,
		orders:   d.Orders,
		users:    d.Users,
		carts:    d.Carts,
		metrics:  d.Metrics,
	}
	s.registerRoutes(d.Swagger)
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

// ServeHTTP routes "/api/products/" like "/api/products" before handing the
// request to the engine. Swagger keeps its own trailing-slash paths.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if p := r.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") && !strings.HasPrefix(p, "/swagger/") {
		r.URL.Path = strings.TrimRight(p, "/")
		if r.URL.Path == "" {
			r.URL.Path = "/"
		}
		r.URL.RawPath = ""
	}
	s.engine.ServeHTTP(w, r)
}

func (s *Server) registerRoutes(swagger bool) {
	if swagger {
		s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))
	}

	s.engine.GET("/health", s.health)

	api := s.engine.Group("/api")
	{
		products := api.Group("/products")
		products.GET("", s.listProducts)
		products.GET("/:id", s.getProduct)
		products.POST("", s.createProduct)
		products.PUT("/:id", s.updateProduct)
		products.DELETE("/:id", s.deleteProduct)

		orders := api.Group("/orders")
		orders.GET("", s.listOrders)
		orders.GET("/:id", s.getOrder)
		orders.GET("/user/:userId", s.listUserOrders)
		orders.POST("", s.createOrder)
		orders.PATCH("/:id/status", s.updateOrderStatus)

		users := api.Group("/users")
		users.GET("", s.listUsers)
		users.GET("/:id", s.getUser)
		users.POST("", s.createUser)
		users.PUT("/:id", s.updateUser)

		cart := api.Group("/cart")
		cart.GET("/:userId", s.getCart)
		cart.POST("/:userId/items", s.addCartItem)
		cart.DELETE("/:userId/items/:productId", s.removeCartItem)
		cart.DELETE("/:userId", s.clearCart)
	}

	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "OK", Timestamp: time.Now().UTC()})
}
