package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/hotel-room-inventory/internal/pkg/response"
	"github.com/nekogravitycat/hotel-room-inventory/internal/room"
	roomHttp "github.com/nekogravitycat/hotel-room-inventory/internal/room/http"
)

// Pinger reports whether the store is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds the dependencies of the HTTP router.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       *zap.Logger
	RoomService  room.Service
	DB           Pinger
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (request ID, access log,
// recovery, CORS) and registering routes for the room module under /api.
func NewRouter(cfg Config) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(RequestID(), AccessLog(logger), Recovery(logger))
	r.Use(cors.New(corsConfig(cfg)))

	r.NoRoute(RouteNotFound)
	r.GET("/healthz", healthz(cfg.DB))

	roomHandler := roomHttp.NewHandler(cfg.RoomService)

	apiGroup := r.Group("/api")
	{
		roomHttp.RegisterRoutes(apiGroup, roomHandler)
	}

	return r
}

// corsConfig allows any origin in development, like a browser UI served from
// another port, and only PROD_ORIGINS in production.
func corsConfig(cfg Config) cors.Config {
	config := cors.DefaultConfig()
	if cfg.IsProduction {
		var origins []string
		for _, o := range strings.Split(cfg.ProdOrigins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		config.AllowOrigins = origins
		if len(origins) == 0 {
			config.AllowOriginFunc = func(string) bool { return false }
		}
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}
	return config
}

func healthz(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
