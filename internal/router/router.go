package router

import (
	"time"

	"github.com/ravindraogg/DUHACKS/internal/config"
	"github.com/ravindraogg/DUHACKS/internal/handler"
	"github.com/ravindraogg/DUHACKS/internal/insight"
	"github.com/ravindraogg/DUHACKS/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, insights *insight.Client) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.Metrics())

	// the SPA runs on its own origin and sends the bearer header
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.Origin},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ====== API ======
	api := r.Group("/api")

	// no auth required
	authHandler := handler.NewAuthHandler(db, cfg.JWT)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// everything below needs a live session
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, db))

	protected.POST("/logout", authHandler.Logout)
	protected.GET("/auth-status", authHandler.AuthStatus)

	expenseHandler := handler.NewExpenseHandler(db)
	protected.POST("/expenses", expenseHandler.AddExpenses)
	protected.GET("/expenses/recent", expenseHandler.ListRecent)
	protected.GET("/expenses/:expenseType", expenseHandler.ListByType)
	protected.DELETE("/expenses/:expenseId", expenseHandler.Delete)
	protected.POST("/expenses/analysis", expenseHandler.Analyze)
	protected.GET("/expenses/analysis/:expenseType", expenseHandler.AnalyzeByType)

	insightHandler := handler.NewInsightHandler(insights)
	protected.POST("/generate-insights", insightHandler.Generate)

	return r
}
