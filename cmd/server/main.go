package main

import (
	"log"

	"github.com/magi8101/form-builder/internal/config"
	"github.com/magi8101/form-builder/internal/database"
	"github.com/magi8101/form-builder/internal/handlers"
	"github.com/magi8101/form-builder/internal/middleware"
	"github.com/magi8101/form-builder/internal/services"
	"github.com/magi8101/form-builder/internal/ws"

	_ "github.com/magi8101/form-builder/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Form Builder API
// @version         1.0
// @description     API for building forms, collecting responses and exporting results
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	formService := services.NewFormService(db)
	responseService := services.NewResponseService(db, hub)

	authHandler := handlers.NewAuthHandler(authService)
	formHandler := handlers.NewFormHandler(formService)
	questionHandler := handlers.NewQuestionHandler(formService)
	responseHandler := handlers.NewResponseHandler(formService, responseService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/forms/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		forms := api.Group("/forms")
		forms.Use(middleware.JWTAuth(authService))
		{
			forms.GET("", formHandler.ListForms)
			forms.POST("", formHandler.CreateForm)
			forms.GET("/:id", formHandler.GetForm)
			forms.PUT("/:id", formHandler.UpdateForm)
			forms.DELETE("/:id", formHandler.DeleteForm)

			forms.POST("/:id/questions", questionHandler.AddQuestion)
			forms.PUT("/:id/questions/:qid", questionHandler.UpdateQuestionField)
			forms.DELETE("/:id/questions/:qid", questionHandler.RemoveQuestion)
			forms.POST("/:id/questions/:qid/options", questionHandler.AddOption)
			forms.PUT("/:id/questions/:qid/options/:index", questionHandler.UpdateOption)
			forms.DELETE("/:id/questions/:qid/options/:index", questionHandler.RemoveOption)
			forms.PUT("/:id/reorder", questionHandler.ReorderQuestions)

			forms.GET("/:id/responses", responseHandler.ListResponses)
			forms.GET("/:id/responses/export", responseHandler.ExportResponses)
		}

		public := api.Group("/public")
		{
			public.GET("/forms/:id", responseHandler.GetPublicForm)
			public.POST("/forms/:id/responses", responseHandler.SubmitResponse)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
