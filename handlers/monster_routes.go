// handlers/monster_routes.go
package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"deeper-dungeons/models"
	"deeper-dungeons/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMonsterRoutes(router fiber.Router, monsters *services.MonsterService, images *services.ImageService) {
	router.Get("/monsters", func(c *fiber.Ctx) error {
		filter := services.MonsterFilter{
			Name:    c.Query("name"),
			Type:    c.Query("type"),
			MinSize: c.Query("minSize"),
			MaxSize: c.Query("maxSize"),
			MinCR:   c.Query("minCr"),
			MaxCR:   c.Query("maxCr"),
		}
		list, err := monsters.List(c.UserContext(), filter)
		if err != nil {
			return err
		}
		return c.JSON(list)
	})

	router.Put("/monsters", func(c *fiber.Ctx) error {
		dto, err := decodeMonster(c)
		if err != nil {
			return err
		}
		saved, err := monsters.Save(c.UserContext(), dto)
		if err != nil {
			return err
		}
		return c.JSON(saved)
	})

	// registered before /monsters/:id so "import" is never read as an id
	router.Post("/monsters/import", func(c *fiber.Ctx) error {
		dto, err := decodeMonster(c)
		if err != nil {
			return err
		}
		imported, err := monsters.Import(c.UserContext(), dto)
		if err != nil {
			return err
		}
		return c.JSON(imported)
	})

	router.Get("/monsters/:id", func(c *fiber.Ctx) error {
		id, err := monsterID(c)
		if err != nil {
			return err
		}
		dto, err := monsters.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(dto)
	})

	router.Delete("/monsters/:id", func(c *fiber.Ctx) error {
		id, err := monsterID(c)
		if err != nil {
			return err
		}
		if err := monsters.Delete(c.UserContext(), id); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	router.Get("/monsters/:id/export", func(c *fiber.Ctx) error {
		id, err := monsterID(c)
		if err != nil {
			return err
		}
		exported, err := monsters.Export(c.UserContext(), id)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentDisposition, attachment(exported.Filename))
		return c.JSON(exported.Monster)
	})

	router.Post("/monsters/:id/image", func(c *fiber.Ctx) error {
		id, err := monsterID(c)
		if err != nil {
			return err
		}
		file, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "file is required")
		}
		dto, err := images.Upload(c.UserContext(), id, file)
		if err != nil {
			return err
		}
		return c.JSON(dto)
	})

	router.Post("/monsters/:id/image-url", func(c *fiber.Ctx) error {
		id, err := monsterID(c)
		if err != nil {
			return err
		}
		dto, err := images.UploadFromURL(c.UserContext(), id, string(c.Body()))
		if err != nil {
			return err
		}
		return c.JSON(dto)
	})
}

var quotedStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", "", "\n", "")

// attachment renders a Content-Disposition value with filename as a quoted
// string.
func attachment(filename string) string {
	return `attachment; filename="` + quotedStringEscaper.Replace(filename) + `"`
}

func monsterID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid monster id: "+c.Params("id"))
	}
	return uint(id), nil
}

// decodeMonster reads a monster document from the body. Unknown keys are
// ignored so documents exported by other versions still import.
func decodeMonster(c *fiber.Ctx) (models.MonsterDTO, error) {
	var dto models.MonsterDTO
	if err := json.Unmarshal(c.Body(), &dto); err != nil {
		return models.MonsterDTO{}, fmt.Errorf("invalid monster JSON: %w", err)
	}
	return dto, nil
}
