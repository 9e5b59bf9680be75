package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"carwise/cmd/fx/calculator_fx"
	"carwise/cmd/fx/chat_fx"
	"carwise/cmd/fx/parser_fx"
	"carwise/internal/api/controllers"
	"carwise/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		parser_fx.Module,
		calculator_fx.Module,
		chat_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
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
	chatController *controllers.ChatController,
	calculatorController *controllers.CalculatorController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, chatController, calculatorController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	chatController *controllers.ChatController,
	calculatorController *controllers.CalculatorController) {

	chatGroup := r.Group("/chat")
	chatGroup.POST("/start", chatController.StartChatHandler)
	chatGroup.POST("/answer", chatController.AnswerHandler)
	chatGroup.POST("/help", chatController.HelpHandler)
	chatGroup.GET("/:sessionId", chatController.GetTranscriptHandler)

	r.POST("/calculate", calculatorController.CalculateHandler)
}
