package api

import (
	"github.com/fako1024/ntctherm/pkg/sensor"
	"github.com/gofiber/fiber/v2"
)

// API denotes a REST API exposing a temperature sensing pipeline
type API struct {
	sensor *sensor.Sensor
	router *fiber.App
}

// New instantiates a new API
func New(s *sensor.Sensor, endpoint string) *API {

	api := API{
		sensor: s,
		router: fiber.New(),
	}

	// Setup routes
	api.router.Get("/temperature", api.handleReadTemperature())
	api.router.Get("/temperature/celsius", api.handleReadTemperatureAs(sensor.UnitCelsius))
	api.router.Get("/temperature/fahrenheit", api.handleReadTemperatureAs(sensor.UnitFahrenheit))
	api.router.Get("/temperature/kelvin", api.handleReadTemperatureAs(sensor.UnitKelvin))

	// Start to listen in goroutine
	go func() {
		if err := api.router.Listen(endpoint); err != nil {
			panic(err)
		}
	}()

	return &api
}

func (api *API) handleReadTemperature() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		return writeReading(c, api.sensor.ReadTemperature(), api.sensor.Unit())
	}
}

func (api *API) handleReadTemperatureAs(unit sensor.Unit) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		var temp float64
		switch unit {
		case sensor.UnitFahrenheit:
			temp = api.sensor.ReadTemperatureF()
		case sensor.UnitKelvin:
			temp = api.sensor.ReadTemperatureK()
		default:
			temp = api.sensor.ReadTemperatureC()
		}
		return writeReading(c, temp, unit)
	}
}

func writeReading(c *fiber.Ctx, temp float64, unit sensor.Unit) error {
	if temp == sensor.InvalidTemperature {
		return fiber.NewError(fiber.StatusServiceUnavailable, "no valid temperature reading")
	}

	return c.JSON(fiber.Map{
		"temperature": temp,
		"unit":        string(unit),
	})
}
