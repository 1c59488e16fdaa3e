// Package routesはroutingを行います。
package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/CodyT21/todos/internal/config"
	"github.com/CodyT21/todos/internal/handlers"
	"github.com/CodyT21/todos/internal/repositories"
	"github.com/CodyT21/todos/internal/services"
	"github.com/CodyT21/todos/internal/views"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(cfg *config.Config, sessionRepo *repositories.SessionRepository, jwtService *services.JWTService) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(views.MustTemplates())

	// CORS対策
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// サービス
	listStore := services.NewListStore()

	// ハンドラー
	listHandler := handlers.NewListHandler(listStore)
	todoHandler := handlers.NewTodoHandler(listStore)

	// ルーティング
	r.GET("/api/health", func(c *gin.Context) { HealthHandler(c, sessionRepo) })

	sessioned := r.Group("/")
	sessioned.Use(SessionMiddleware(cfg, sessionRepo, jwtService))
	{
		sessioned.GET("/", listHandler.IndexHandler)
		sessioned.GET("/lists", listHandler.GetListsHandler)
		sessioned.GET("/lists/new", listHandler.NewListFormHandler)
		sessioned.POST("/lists", listHandler.CreateListHandler)
		sessioned.GET("/lists/:id", listHandler.GetListHandler)
		sessioned.POST("/lists/:id", listHandler.UpdateListHandler)
		sessioned.GET("/lists/:id/edit", listHandler.EditListHandler)
		sessioned.POST("/lists/:id/destroy", listHandler.DeleteListHandler)
		sessioned.POST("/lists/:id/complete_all", todoHandler.CompleteAllHandler)
		sessioned.POST("/lists/:id/todos", todoHandler.CreateTodoHandler)
		sessioned.POST("/lists/:id/todos/:todo_id", todoHandler.UpdateTodoHandler)
		sessioned.POST("/lists/:id/todos/:todo_id/destroy", todoHandler.DeleteTodoHandler)
	}

	return r
}

// HealthHandler はサーバーの状態と保持しているセッション数を返します。
func HealthHandler(c *gin.Context, sessionRepo *repositories.SessionRepository) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": sessionRepo.Count()})
}
