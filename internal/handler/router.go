package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking-core/internal/handler/api"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, roomHandler *api.RoomHandler, catalogHandler *api.CatalogHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, roomHandler, catalogHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, roomHandler *api.RoomHandler, catalogHandler *api.CatalogHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodGet, Path: "/availability", Handler: roomHandler.Availability},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/catalog", Handler: catalogHandler.Get},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "/regular", Handler: bookingHandler.ListRegular},
				{Method: http.MethodGet, Path: "/package", Handler: bookingHandler.ListPackages},
				{Method: http.MethodGet, Path: "/:displayId", Handler: bookingHandler.Get},
				{Method: http.MethodGet, Path: "/:displayId/check-in-preview", Handler: bookingHandler.CheckInPreview},
				{Method: http.MethodPost, Path: "/:displayId/check-in", Handler: bookingHandler.CheckIn},
				{Method: http.MethodPost, Path: "/:displayId/extend", Handler: bookingHandler.Extend},
				{Method: http.MethodPost, Path: "/:displayId/cancel", Handler: bookingHandler.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
