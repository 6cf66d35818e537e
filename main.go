package main

import (
	"codelearn/config"
	"codelearn/database"
	authRoutes "codelearn/routers/authRoutes"
	chatRoutes "codelearn/routers/chatRoutes"
	compilerRoutes "codelearn/routers/compilerRoutes"
	courseRoutes "codelearn/routers/courseRoutes"
	quizRoutes "codelearn/routers/quizRoutes"
	userRoutes "codelearn/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	chatRoutes.SetupChatRoutes(app)
	compilerRoutes.SetupCompilerRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
