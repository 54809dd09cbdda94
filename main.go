package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"deeper-dungeons/config"
	"deeper-dungeons/handlers"
	"deeper-dungeons/middleware"
	"deeper-dungeons/models"
	"deeper-dungeons/services"
	"deeper-dungeons/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is stamped at build time: -ldflags "-X main.version=1.4.0"
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var addr string

	serve := func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if addr != "" {
			cfg.Addr = addr
		}
		config.SetupLogging(cfg.LogLevel, cfg.LogFormat)
		return run(cfg)
	}

	root := &cobra.Command{
		Use:          "deeper-dungeons",
		Short:        "Monster stat block editor backend",
		SilenceUsage: true,
		RunE:         serve,
	}
	root.PersistentFlags().StringVar(&addr, "addr", "", "listen address (overrides DD_ADDR)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  serve,
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return root
}

func run(cfg config.Config) error {
	log.Info().Str("version", version).Msg("Starting Deeper Dungeons backend")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := models.OpenDatabase(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	imageStore, err := newImageStore(ctx, cfg)
	if err != nil {
		return err
	}

	// a shutdown request cancels ctx, exactly like SIGTERM
	system, err := services.NewSystemService(version, cfg.ShutdownDelay, stop)
	if err != nil {
		return err
	}
	defer system.Close()

	monsterService := services.NewMonsterService(services.NewGormMonsterStore(db), version)
	imageService := services.NewImageService(monsterService, imageStore, utils.NewHTTPClient(cfg.ImageFetchTimeout), int64(cfg.BodyLimit))

	app := newApp(cfg, monsterService, imageService, system, imageStore)

	go func() {
		if err := app.Listen(cfg.Addr); err != nil {
			log.Error().Err(err).Msg("Server error")
			stop()
		}
	}()
	log.Info().Str("addr", cfg.Addr).Str("database", cfg.DatabaseURL).Msg("✅ Server running")

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")
	return app.ShutdownWithTimeout(5 * time.Second)
}

func newImageStore(ctx context.Context, cfg config.Config) (utils.ImageStore, error) {
	if cfg.ImageBucket != "" {
		log.Info().Str("bucket", cfg.ImageBucket).Msg("storing portraits in bucket")
		return utils.NewS3ImageStore(ctx, utils.S3Config{
			Bucket:          cfg.ImageBucket,
			Endpoint:        cfg.ImageEndpoint,
			Region:          cfg.ImageRegion,
			AccessKeyID:     cfg.ImageAccessKeyID,
			SecretAccessKey: cfg.ImageSecretAccessKey,
		})
	}
	return utils.NewLocalImageStore(cfg.ImageDir)
}

func newApp(cfg config.Config, monsters *services.MonsterService, images *services.ImageService, system *services.SystemService, imageStore utils.ImageStore) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "deeper-dungeons " + version,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestLogMiddleware())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(splitOrigins(cfg.AllowedOrigins), ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.AccessTokenMiddleware(cfg.AccessToken))

	api := app.Group(strings.TrimRight(cfg.BasePath, "/"))
	handlers.SetupMonsterRoutes(api, monsters, images)
	handlers.SetupSystemRoutes(api, system)

	handlers.SetupImageRoutes(app, imageStore)
	handlers.SetupEditorRoutes(app, cfg.WebDir)
	return app
}

func splitOrigins(raw string) []string {
	var out []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
