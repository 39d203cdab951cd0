package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lndominguez/apexutravel-sub004/internal/infra/config"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/obs"
)

type OfferHTTP interface {
	List(c *gin.Context)
	Get(c *gin.Context)
}

type FlightHTTP interface {
	Search(c *gin.Context)
}

type AdminOfferHTTP interface {
	Create(c *gin.Context)
}

type Handlers struct {
	Offer      OfferHTTP
	Flight     FlightHTTP
	AdminOffer AdminOfferHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	if h.Offer != nil {
		api.GET("/offers", h.Offer.List)
		api.GET("/offers/:slug", h.Offer.Get)
	}
	if h.Flight != nil {
		api.GET("/flights/search", h.Flight.Search)
	}
	if h.AdminOffer != nil {
		admin := api.Group("/admin")
		admin.POST("/offers", h.AdminOffer.Create)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
