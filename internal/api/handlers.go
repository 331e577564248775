package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	db            *gorm.DB
	secretKey     []byte
	location      *time.Location
	cookieSecure  bool
	repositories  *db.Repositories
	authService   *services.AuthService
	habitService  *services.HabitService
	statsService  *services.StatsService
	exportService *services.ExportService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:            database,
		secretKey:     []byte(secret),
		location:      location,
		cookieSecure:  cookieSecure,
		repositories:  repositories,
		authService:   services.NewAuthService(repositories.Users),
		habitService:  services.NewHabitService(repositories.Habits),
		statsService:  services.NewStatsService(repositories.Habits),
		exportService: services.NewExportService(repositories.Habits),
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// now returns the wall clock localized to the configured timezone; every
// "today"-dependent computation flows from this single point.
func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}

// today is now truncated to the calendar day the configured timezone is
// currently in. Streak and progress reads take a day, not an instant.
func (handler *Handler) today() time.Time {
	return services.DateAtLocation(time.Now(), handler.location)
}
