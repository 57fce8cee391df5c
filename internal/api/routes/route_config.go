package routes

import (
	"Fridgemate-Backend/internal/api/handlers"
	"Fridgemate-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	FridgeHandler   handlers.FridgeHandler
	ItemHandler     handlers.ItemHandler
	LabelHandler    handlers.LabelHandler
	SensorHandler   handlers.SensorHandler
	HardwareHandler handlers.HardwareHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Software()
	c.Hardware()
	c.GuestRoute()
}

// Software carries the mobile-client operations. Route names mirror the
// operation names the clients dispatch on.
func (c *Config) Software() {
	software := c.App.Group("/api/v1/software")
	{
		software.Post("/get_user_mapping", c.FridgeHandler.Resolve)
		software.Post("/add_user_mapping", c.FridgeHandler.Associate)
		software.Post("/get_data", c.ItemHandler.GetInventory)
		software.Post("/add_data", c.ItemHandler.AddItem)
		software.Post("/delete_data", c.ItemHandler.DeleteItem)
		software.Post("/update_unlabeled_data", c.LabelHandler.LabelItem)
		software.Post("/update_labeled_data", c.LabelHandler.RelabelItem)
		software.Post("/get_env_data", c.SensorHandler.GetEnvironment)
		software.Post("/get_door_data", c.SensorHandler.GetDoorState)
	}
}

// Hardware carries the fridge-unit operations.
func (c *Config) Hardware() {
	hardware := c.App.Group("/api/v1/hardware")
	{
		hardware.Post("/add_data", c.HardwareHandler.IngestItems)
		hardware.Post("/delete_data", c.HardwareHandler.ConsumeItem)
		hardware.Post("/add_env_data", c.SensorHandler.RecordEnvironment)
		hardware.Post("/add_door_data", c.SensorHandler.RecordDoorState)
		hardware.Post("/upload_image", c.HardwareHandler.UploadImage)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
