package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/itemshare/item-sharing-backend/internal/api"
	"github.com/itemshare/item-sharing-backend/internal/booking"
	"github.com/itemshare/item-sharing-backend/internal/item"
	"github.com/itemshare/item-sharing-backend/internal/itemrequest"
	"github.com/itemshare/item-sharing-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Logger       zerolog.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// ItemRequest module (service wired below, after the item reader)
	requestRepo := itemrequest.NewPgxRepository(cfg.DBPool)

	// Item module, with the booking-side reader for the aggregation view
	// and the comment gate
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	commentRepo := item.NewPgxCommentRepository(cfg.DBPool)
	bookingReader := booking.NewItemBookingReader(cfg.DBPool)
	itemService := item.NewService(itemRepo, commentRepo, userRepo, requestRepo, bookingReader)

	// ItemRequest service, with the item-side reader for the fan-out
	itemReader := item.NewRequestItemReader(cfg.DBPool)
	requestService := itemrequest.NewService(requestRepo, userRepo, itemReader)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(cfg.DBPool, bookingRepo, userRepo)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         cfg.Logger,
		UserService:    userService,
		ItemService:    itemService,
		BookingService: bookingService,
		RequestService: requestService,
	})

	return &Container{Router: router}
}
