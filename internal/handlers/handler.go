package handlers

import (
	"net/http"

	"healthtrack/internal/logger"
	"healthtrack/internal/models"
	"healthtrack/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config carries HTTP-layer tunables injected at startup.
type Config struct {
	// Dev includes error detail in responses; never enable in production.
	Dev bool
	// RatePerSecond and RateBurst bound the per-client request rate on the
	// /api/v1 group.
	RatePerSecond float64
	RateBurst     int
}

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	dev      bool
	limiters *clientLimiters
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cfg Config) *Handler {
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 20
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 40
	}
	return &Handler{
		services: services,
		log:      log,
		dev:      cfg.Dev,
		limiters: newClientLimiters(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Live recent-measurements feed, upgraded on the same port.
	router.GET("/ws/measurements", h.requireAuth(), h.wsMeasurements)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.rateLimit())
	{
		h.registerArticleRoutes(api)
		h.registerUserRoutes(api)
		h.registerDiaryRoutes(api)
		h.registerMealRoutes(api)
		h.registerExerciseRoutes(api)
		h.registerMeasurementRoutes(api)
	}
}

func (h *Handler) registerArticleRoutes(api *gin.RouterGroup) {
	article := api.Group("/article")
	{
		// Reads are public; mutations are admin-only.
		article.GET("/", h.listArticles)
		article.GET("/:id", h.getArticle)
		article.POST("/", h.requireAuth(models.RoleAdmin), h.createArticle)
		article.PUT("/:id", h.requireAuth(models.RoleAdmin), h.updateArticle)
		article.DELETE("/:id", h.requireAuth(models.RoleAdmin), h.deleteArticle)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	user := api.Group("/user")
	{
		user.GET("/me", h.requireAuth(), h.getMe)
		user.PUT("/me", h.requireAuth(), h.updateMe)

		admin := h.requireAuth(models.RoleAdmin)
		user.GET("/", admin, h.listUsers)
		user.POST("/", admin, h.createUser)
		user.GET("/:id", admin, h.getUser)
		user.PUT("/:id", admin, h.updateUser)
		user.DELETE("/:id", admin, h.deleteUser)
	}
}

func (h *Handler) registerDiaryRoutes(api *gin.RouterGroup) {
	authed := h.requireAuth(models.RoleUser, models.RoleAdmin)
	diary := api.Group("/diary", authed)
	{
		diary.GET("/", h.listDiaries)
		diary.POST("/", h.createDiary)
		diary.GET("/:id", h.getDiary)
		diary.PUT("/:id", h.updateDiary)
		diary.DELETE("/:id", h.deleteDiary)
	}
}

func (h *Handler) registerMealRoutes(api *gin.RouterGroup) {
	authed := h.requireAuth(models.RoleUser, models.RoleAdmin)
	meal := api.Group("/meal", authed)
	{
		meal.GET("/", h.listMeals)
		meal.POST("/", h.createMeal)
		meal.GET("/:id", h.getMeal)
		meal.PUT("/:id", h.updateMeal)
		meal.DELETE("/:id", h.deleteMeal)
	}
}

func (h *Handler) registerExerciseRoutes(api *gin.RouterGroup) {
	authed := h.requireAuth(models.RoleUser, models.RoleAdmin)
	exercise := api.Group("/exercise-record", authed)
	{
		exercise.GET("/", h.listExercises)
		exercise.POST("/", h.createExercise)
		exercise.GET("/:id", h.getExercise)
		exercise.PUT("/:id", h.updateExercise)
		exercise.DELETE("/:id", h.deleteExercise)
	}
}

func (h *Handler) registerMeasurementRoutes(api *gin.RouterGroup) {
	authed := h.requireAuth(models.RoleUser, models.RoleAdmin)
	measurement := api.Group("/body-measurement", authed)
	{
		measurement.GET("/", h.listMeasurements)
		measurement.GET("/recent", h.recentMeasurements)
		measurement.POST("/", h.createMeasurement)
		measurement.GET("/:id", h.getMeasurement)
		measurement.PUT("/:id", h.updateMeasurement)
		measurement.DELETE("/:id", h.deleteMeasurement)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
