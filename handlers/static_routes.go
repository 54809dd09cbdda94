// handlers/static_routes.go
package handlers

import (
	"net/http"

	"deeper-dungeons/services"
	"deeper-dungeons/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/rs/zerolog/log"
)

// SetupImageRoutes serves stored portraits under /images.
func SetupImageRoutes(app *fiber.App, store utils.ImageStore) {
	store.Mount(app, services.ImagePathPrefix)
}

// SetupEditorRoutes serves the browser editor bundle from webDir at "/",
// falling back to the entry file for client-side routes. A missing or empty
// webDir leaves the API running headless.
func SetupEditorRoutes(app *fiber.App, webDir string) {
	if webDir == "" {
		return
	}
	entry, err := utils.FindEntryPoint(webDir)
	if err != nil {
		log.Warn().Err(err).Str("dir", webDir).Msg("[Editor] no editor bundle found, serving API only")
		return
	}

	app.Use("/", filesystem.New(filesystem.Config{
		Root:         http.Dir(webDir),
		Index:        "/" + entry,
		MaxAge:       3600,
		NotFoundFile: entry,
	}))
	log.Info().Str("dir", webDir).Str("entry", entry).Msg("[Editor] serving editor bundle")
}
