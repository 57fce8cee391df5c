package config

import (
	"Fridgemate-Backend/internal/api/handlers"
	"Fridgemate-Backend/internal/api/routes"
	"Fridgemate-Backend/internal/middleware"
	"Fridgemate-Backend/internal/utils"
	"Fridgemate-Backend/internal/utils/storage"
	"Fridgemate-Backend/pkg/fridge"
	"Fridgemate-Backend/pkg/item"
	"Fridgemate-Backend/pkg/label"
	"Fridgemate-Backend/pkg/sensor"
	"Fridgemate-Backend/pkg/upload"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	fridgeRepository := fridge.NewFridgeRepository(db)
	itemRepository := item.NewItemRepository(db)
	sensorRepository := sensor.NewSensorRepository(db)

	// Service
	fridgeService := fridge.NewFridgeService(fridgeRepository)
	itemService := item.NewItemService(itemRepository, fridgeRepository, s3)
	labelService := label.NewLabelService(itemRepository, fridgeRepository)
	sensorService := sensor.NewSensorService(sensorRepository, fridgeRepository)
	uploadService := upload.NewUploadService(s3)

	// Handler
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator)
	itemHandler := handlers.NewItemHandler(itemService, validator)
	labelHandler := handlers.NewLabelHandler(labelService, validator)
	sensorHandler := handlers.NewSensorHandler(sensorService, validator)
	hardwareHandler := handlers.NewHardwareHandler(itemService, uploadService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		FridgeHandler:   fridgeHandler,
		ItemHandler:     itemHandler,
		LabelHandler:    labelHandler,
		SensorHandler:   sensorHandler,
		HardwareHandler: hardwareHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
