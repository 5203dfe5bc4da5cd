package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/campusmentor/booking-portal/config"
	"github.com/campusmentor/booking-portal/cron"
	"github.com/campusmentor/booking-portal/redis"
	"github.com/campusmentor/booking-portal/routes"
	"github.com/campusmentor/booking-portal/sheets"
)

func main() {
	config.Load()
	if config.SessionSecret() == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	sheets.Init()
	redis.Init()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupPageRoutes(app)
	routes.SetupAuthRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupAPIRoutes(app)

	if config.RemindersEnabled() {
		cron.StartReminderJobs()
	}

	port := config.Port()
	log.Printf("Starting booking portal on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
