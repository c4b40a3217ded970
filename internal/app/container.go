package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nekogravitycat/hotel-room-inventory/internal/api"
	"github.com/nekogravitycat/hotel-room-inventory/internal/room"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Logger       *zap.Logger

	// RoomRepository overrides the Postgres repository, e.g. with an in-memory one in tests.
	RoomRepository room.Repository
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router      *gin.Engine
	RoomService room.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Room Module
	roomRepo := cfg.RoomRepository
	if roomRepo == nil {
		roomRepo = room.NewPgxRepository(cfg.DBPool)
	}
	roomService := room.NewService(roomRepo)

	// API Router Config
	routerParams := api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		Logger:       cfg.Logger,
		RoomService:  roomService,
	}
	if cfg.DBPool != nil {
		routerParams.DB = cfg.DBPool
	}

	return &Container{
		Router:      api.NewRouter(routerParams),
		RoomService: roomService,
	}
}
