package server

import (
	"context"
	"net/http"

	"github.com/ghoOst57/genetic-miniapp/internal/auth"
	"github.com/ghoOst57/genetic-miniapp/internal/availability"
	"github.com/ghoOst57/genetic-miniapp/internal/booking"
	"github.com/ghoOst57/genetic-miniapp/internal/config"
	"github.com/ghoOst57/genetic-miniapp/internal/doctor"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *sqlx.DB
	config     *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, catalog doctor.Catalog) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	doctorHandler := doctor.NewHandler(catalog)
	availabilityHandler := availability.NewHandler(catalog.Doctor.ID)
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewRepository(db)))
	authHandler := auth.NewHandler(cfg.BotToken, cfg.SessionSecret, cfg.DevMode)

	// Read-only content and availability
	router.GET("/doctor", doctorHandler.GetProfile)
	router.GET("/doctor/:doctorID", doctorHandler.GetProfileByID)
	router.GET("/doctor/:doctorID/awards", doctorHandler.ListAwardsForDoctor)
	router.GET("/doctor/:doctorID/review-assets", doctorHandler.ListReviewsForDoctor)
	router.GET("/doctor/:doctorID/availability", availabilityHandler.ListForDoctor)
	router.GET("/awards", doctorHandler.ListAwards)
	router.GET("/reviews", doctorHandler.ListReviews)
	router.GET("/availability", availabilityHandler.List)

	router.GET("/booking/:bookingID", bookingHandler.Get)

	// Mutating endpoints get rate limiting; the session token is optional
	// and only attributes the booking to a Telegram user.
	write := router.Group("/")
	write.Use(RateLimitMiddleware(5, 10))
	write.Use(auth.OptionalIdentity(cfg.SessionSecret))
	{
		write.POST("/booking", bookingHandler.Create)
		write.POST("/auth/verify", authHandler.Verify)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
