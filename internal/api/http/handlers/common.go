package handlers

import "github.com/gofiber/fiber/v2"

// publishedFilter reads the optional ?published=true|false list filter.
// Anything else means no filter.
func publishedFilter(c *fiber.Ctx) *bool {
	switch c.Query("published") {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
