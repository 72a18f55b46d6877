package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/eupern/ai-cancer-chatbot/chat"
	"github.com/eupern/ai-cancer-chatbot/openai"
	"github.com/eupern/ai-cancer-chatbot/report"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[env] no .env file loaded: %v", err)
	}

	ai := openai.NewClient()

	r := gin.Default()
	report.NewHandler(ai).RegisterRoutes(r)
	chat.NewHandler(ai).RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("[server] %v", err)
	}
}
