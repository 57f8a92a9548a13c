package handlers

import (
	"fmt"
	"io"
	"net/http"

	"pinboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CreatePlaceHandler expects multipart form data with a "name" field and an
// "image" file.
func CreatePlaceHandler(placeService *services.PlaceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.FormValue("name")

		var (
			image       []byte
			filename    string
			contentType string
		)
		if fh, err := c.FormFile("image"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read uploaded file"})
			}
			defer f.Close()
			image, err = io.ReadAll(f)
			if err != nil {
				return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read uploaded file"})
			}
			filename = fh.Filename
			contentType = fh.Header.Get("Content-Type")
		}

		place, err := placeService.Create(c.Context(), owner(c), name, image, filename, contentType)
		if err != nil {
			return jsonError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(fiber.Map{"_id": place.ID.Hex()})
	}
}

func GetPlaceHandler(placeService *services.PlaceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		place, err := placeService.Get(c.Context(), owner(c), c.Params("place_id"))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(fiber.Map{
			"_id":       place.ID.Hex(),
			"name":      place.Name,
			"image_url": fmt.Sprintf("/api/places/%s/image", place.ID.Hex()),
		})
	}
}

func GetPlaceImageHandler(placeService *services.PlaceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		blob, err := placeService.GetImage(c.Context(), owner(c), c.Params("place_id"))
		if err != nil {
			return jsonError(c, err)
		}
		if blob.ContentType != "" {
			c.Set(fiber.HeaderContentType, blob.ContentType)
		}
		if blob.Filename != "" {
			c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", blob.Filename))
		}
		return c.Send(blob.Data)
	}
}
