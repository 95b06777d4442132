package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"

	"hotel-manager/config"
	"hotel-manager/controllers"
	"hotel-manager/repository"
	"hotel-manager/routes"
	"hotel-manager/services"
)

func sweepInterval() time.Duration {
	raw := os.Getenv("SWEEP_INTERVAL_MINUTES")
	if raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
		log.Printf("⚠️  invalid SWEEP_INTERVAL_MINUTES=%q, using default", raw)
	}
	return 60 * time.Minute
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase should set config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Repositories
	bookingRepo := repository.NewGormBookingRepository(db)
	roomRepo := repository.NewGormRoomRepository(db)
	typeRepo := repository.NewGormRoomTypeRepository(db)
	customerRepo := repository.NewGormCustomerRepository(db)

	// Services
	availabilitySvc := services.NewAvailabilityService(roomRepo, bookingRepo)
	bookingSvc := services.NewBookingService(db, bookingRepo, roomRepo, typeRepo, customerRepo)
	sweeperSvc := services.NewSweeperService(db, bookingRepo, roomRepo)
	roomSvc := services.NewRoomService(roomRepo, typeRepo)
	typeSvc := services.NewRoomTypeService(typeRepo, roomRepo)
	customerSvc := services.NewCustomerService(customerRepo, bookingRepo)

	// Controllers
	bookingController := controllers.NewBookingController(bookingSvc, sweeperSvc)
	availabilityController := controllers.NewAvailabilityController(availabilitySvc)
	roomController := controllers.NewRoomController(roomSvc)
	typeController := controllers.NewRoomTypeController(typeSvc)
	customerController := controllers.NewCustomerController(customerSvc)
	maintenanceController := controllers.NewMaintenanceController(sweeperSvc)

	// Periodic checkout sweep
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("❌ Scheduler init failed: %v", err)
	}
	if _, err := scheduler.NewJob(
		gocron.DurationJob(sweepInterval()),
		gocron.NewTask(func() {
			report, err := sweeperSvc.Run()
			if err != nil {
				log.Printf("❌ scheduled checkout sweep failed: %v", err)
				return
			}
			if report.Completed > 0 || report.Skipped > 0 {
				log.Printf("✅ checkout sweep: completed=%d skipped=%d", report.Completed, report.Skipped)
			}
		}),
	); err != nil {
		log.Fatalf("❌ Scheduler job failed: %v", err)
	}
	scheduler.Start()

	// Build router
	router := routes.SetupRouter(
		bookingController,
		availabilityController,
		roomController,
		typeController,
		customerController,
		maintenanceController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	if err := scheduler.Shutdown(); err != nil {
		log.Printf("warning: scheduler shutdown: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
