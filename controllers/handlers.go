package controllers

import (
	"errors"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/ameerhamza-malik/ItemManagement/config"
	"github.com/ameerhamza-malik/ItemManagement/middleware"
	"github.com/ameerhamza-malik/ItemManagement/models"
	"github.com/ameerhamza-malik/ItemManagement/services"
	"github.com/ameerhamza-malik/ItemManagement/validation"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	bcryptCost      = 12
	cacheDefaultExp = 5 * time.Minute
	cacheCleanupInt = 10 * time.Minute
	pageSize        = 6
)

// Handler holds the application's dependencies, making them explicit.
type Handler struct {
	DB        *gorm.DB
	Cfg       *config.Config
	Hasher    *services.Hasher
	UserCache *cache.Cache
	Log       *logrus.Logger
}

// NewHandler creates a new handler with its dependencies.
func NewHandler(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *Handler {
	// Create the hasher service with a worker for each available CPU core.
	hasher := services.NewHasher(runtime.NumCPU(), bcryptCost)

	// Create the in-memory cache used by the auth gate.
	userCache := cache.New(cacheDefaultExp, cacheCleanupInt)

	return &Handler{
		DB:        db,
		Cfg:       cfg,
		Hasher:    hasher,
		UserCache: userCache,
		Log:       log,
	}
}

// ## Helper Methods

func (h *Handler) jsonError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// validationError reports per-field rejection messages; the request is
// never executed against storage.
func (h *Handler) validationError(c *gin.Context, errs []validation.FieldError) {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		fields[e.Field] = e.Message
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": fields})
}

func (h *Handler) getUserFromContext(c *gin.Context) (models.User, error) {
	u, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return models.User{}, errors.New("user not found in context")
	}
	user, ok := u.(models.User)
	if !ok {
		return models.User{}, errors.New("invalid user type in context")
	}
	return user, nil
}

func (h *Handler) parseID(idStr string) (uint, error) {
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
