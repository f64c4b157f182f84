package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-backend/pkg/container"
	"blog-backend/pkg/logger"
)

func Serve() {
	// ========================================
	// 1. BUILD DI CONTAINER
	// ========================================
	// Nếu có lỗi → application không start
	appContainer, err := container.NewContainer()
	if err != nil {
		log.Fatalf("❌ Failed to initialize container: %v", err)
	}
	defer appContainer.Cleanup()

	// ========================================
	// 2. SETUP ROUTER + HTTP SERVER
	// ========================================
	router := SetupRouter(appContainer)

	port := appContainer.Config.App.Port
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// ========================================
	// 3. START SERVER (NON-BLOCKING)
	// ========================================
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", map[string]interface{}{
			"port":  port,
			"env":   appContainer.Config.App.Environment,
			"store": appContainer.Config.Store.Driver,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// ========================================
	// 4. GRACEFUL SHUTDOWN
	// ========================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Println("🛑 Shutting down server...")
	case err := <-serverErr:
		logger.Error("server failed", err)
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
