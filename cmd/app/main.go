package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"roteiro/cmd/fx/account_fx"
	"roteiro/cmd/fx/checklist_fx"
	"roteiro/cmd/fx/controllers_fx"
	"roteiro/cmd/fx/dashboard_fx"
	"roteiro/cmd/fx/guide_fx"
	"roteiro/cmd/fx/lodging_fx"
	"roteiro/cmd/fx/member_fx"
	"roteiro/cmd/fx/memcache_fx"
	"roteiro/cmd/fx/memory_fx"
	"roteiro/cmd/fx/store_fx"
	"roteiro/cmd/fx/suggestion_fx"
	"roteiro/cmd/fx/transport_fx"
	"roteiro/internal/api/controllers"
	"roteiro/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		store_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		checklist_fx.Module,
		lodging_fx.Module,
		transport_fx.Module,
		memory_fx.Module,
		member_fx.Module,
		guide_fx.Module,
		suggestion_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	checklistController *controllers.ChecklistController,
	lodgingController *controllers.LodgingController,
	transportController *controllers.TransportController,
	memoryController *controllers.MemoryController,
	memberController *controllers.MemberController,
	guideController *controllers.GuideController,
	weatherController *controllers.WeatherController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		checklistController,
		lodgingController,
		transportController,
		memoryController,
		memberController,
		guideController,
		weatherController,
		dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	checklistController *controllers.ChecklistController,
	lodgingController *controllers.LodgingController,
	transportController *controllers.TransportController,
	memoryController *controllers.MemoryController,
	memberController *controllers.MemberController,
	guideController *controllers.GuideController,
	weatherController *controllers.WeatherController,
	dashboardController *controllers.DashboardController) {

	r.POST("/auth/login", accountController.Login)

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())

	checklistGroup := api.Group("/checklist")
	checklistGroup.GET("", checklistController.List)
	checklistGroup.POST("", checklistController.Create)
	checklistGroup.PUT("/:id", checklistController.Update)
	checklistGroup.PATCH("/:id/toggle", checklistController.Toggle)
	checklistGroup.DELETE("/:id", checklistController.Remove)

	lodgingGroup := api.Group("/lodgings")
	lodgingGroup.GET("", lodgingController.List)
	lodgingGroup.GET("/:id", lodgingController.Get)
	lodgingGroup.POST("", lodgingController.Create)
	lodgingGroup.PUT("/:id", lodgingController.Update)
	lodgingGroup.DELETE("/:id", lodgingController.Remove)
	lodgingGroup.GET("/:id/suggestion", lodgingController.CachedSuggestion)
	lodgingGroup.POST("/:id/suggestion", lodgingController.GenerateSuggestion)

	transportGroup := api.Group("/transports")
	transportGroup.GET("", transportController.List)
	transportGroup.GET("/upcoming", transportController.Upcoming)
	transportGroup.POST("", transportController.Create)
	transportGroup.PUT("/:id", transportController.Update)
	transportGroup.DELETE("/:id", transportController.Remove)

	memoryGroup := api.Group("/memories")
	memoryGroup.GET("", memoryController.List)
	memoryGroup.POST("", memoryController.Create)
	memoryGroup.DELETE("/:id", memoryController.Remove)

	memberGroup := api.Group("/members")
	memberGroup.GET("", memberController.List)
	memberGroup.POST("", memberController.Create)
	memberGroup.PUT("/:id", memberController.Update)
	memberGroup.DELETE("/:id", memberController.Remove)

	guideGroup := api.Group("/guide")
	guideGroup.GET("/destinations", guideController.Destinations)
	guideGroup.GET("/cities", guideController.Cities)
	guideGroup.PATCH("/destinations/:id/visited", guideController.ToggleVisited)

	api.GET("/weather/:city", weatherController.ByCity)
	api.GET("/dashboard/summary", dashboardController.Summary)
}
