package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stock-check/core/loader"
	"stock-check/core/logger"
	"stock-check/core/metrics"
	"stock-check/core/middleware/rayid"
	"stock-check/core/session"

	"stock-check/feature/history"
	"stock-check/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "stock-check/docs/swagger"
)

// @title Stock Check API
// @version 1.0
// @description Warehouse stock verification against the asset register.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the stock check server",
	Long:  `Starts the HTTP server with the inventory and history features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		loc, err := cfg.Server.Location()
		if err != nil {
			logg.Fatal("Invalid server timezone", zap.Error(err))
		}

		ctx := context.Background()
		store, err := openStore(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open session store", zap.Error(err))
		}
		logg.Info("Session store ready", zap.String("backend", cfg.Session.Backend))

		m, err := metrics.New()
		if err != nil {
			logg.Fatal("Failed to register metrics", zap.Error(err))
		}

		sess := session.New(store,
			session.WithLogger(logg),
			session.WithMetrics(m),
			session.WithLocation(loc),
		)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			// multipart overhead on top of the register itself
			BodyLimit: cfg.Register.MaxBytes() + 1<<20,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(inventory.NewFeature(sess, logg, cfg.Register.MaxBytes()))
		mgr.Register(history.NewFeature(store, logg))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", m.Handler())

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
