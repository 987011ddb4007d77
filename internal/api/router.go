package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/itemshare/item-sharing-backend/internal/booking"
	bookingHttp "github.com/itemshare/item-sharing-backend/internal/booking/http"
	"github.com/itemshare/item-sharing-backend/internal/identity"
	"github.com/itemshare/item-sharing-backend/internal/item"
	itemHttp "github.com/itemshare/item-sharing-backend/internal/item/http"
	"github.com/itemshare/item-sharing-backend/internal/itemrequest"
	requestHttp "github.com/itemshare/item-sharing-backend/internal/itemrequest/http"
	"github.com/itemshare/item-sharing-backend/internal/metrics"
	"github.com/itemshare/item-sharing-backend/internal/user"
	userHttp "github.com/itemshare/item-sharing-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	Logger         zerolog.Logger
	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService itemrequest.Service
}

// NewRouter initializes the HTTP router engine: middleware (CORS, logging,
// metrics, recovery) and the per-module routes.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), Metrics(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:8081"}
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	r.Use(cors.New(corsConfig))

	metrics.Register()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// identityMiddleware extracts the gateway-authenticated caller id.
	identityMiddleware := identity.Required()

	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler, identityMiddleware)
		bookingHttp.RegisterRoutes(root, bookingHandler, identityMiddleware)
		requestHttp.RegisterRoutes(root, requestHandler, identityMiddleware)
	}

	return r
}
