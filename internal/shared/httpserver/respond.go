package httpserver

import "github.com/gofiber/fiber/v2"

// Every endpoint answers with the same envelope: {status, results} on success,
// {status, errors} on failure, status mirroring the real HTTP code.

// Success writes the 200 envelope with the given results payload
func Success(c *fiber.Ctx, results any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"results": results,
	})
}

// SuccessWith writes a 200 envelope with extra top-level fields next to results,
// some legacy endpoints return ids outside the results key
func SuccessWith(c *fiber.Ctx, results any, extra fiber.Map) error {
	body := fiber.Map{
		"status":  fiber.StatusOK,
		"results": results,
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// Fail writes the error envelope with the given HTTP status
func Fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"status": status,
		"errors": err.Error(),
	})
}
