package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Arjun-733/OfferSphere/catalog"
	"github.com/Arjun-733/OfferSphere/config"
	"github.com/Arjun-733/OfferSphere/controllers"
	"github.com/Arjun-733/OfferSphere/routes"
	"github.com/Arjun-733/OfferSphere/utils"
)

func main() {
	ctx := context.Background()

	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	utils.LogInfo("Starting offer engine in %s mode", cfg.App.Env)

	// Build the offer catalog and start the background refresh loop
	client := catalog.NewClient(cfg.Offers.APIURL, cfg.Offers.FetchTimeout)
	offerCatalog := catalog.New(client, cfg.Offers.RefreshInterval)
	offerCatalog.Start(ctx)
	defer offerCatalog.Stop()

	controllers.Init(offerCatalog, cfg.App.CurrencyCode)

	// Set up router with middleware
	router := routes.SetupRouter(offerCatalog)

	server := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		utils.LogInfo("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.LogError("Error starting server: %v", err)
			log.Fatal("Error starting server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.LogInfo("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogError("Server forced to shutdown: %v", err)
	}

	utils.LogInfo("Server exited gracefully")
}
