package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-backend/internal/client"
	"marketplace-backend/internal/config"
	"marketplace-backend/internal/repository"
	"marketplace-backend/internal/server"
	"marketplace-backend/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)

	if err := client.SeedAdminEmail(db, cfg.Seed.AdminEmail); err != nil {
		log.Fatal("seed admin email:", err)
	}

	userRepo := repository.NewUserRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	returnRepo := repository.NewReturnRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	images := service.NewImageStore(cfg.UploadDir)
	tokenTTL := time.Duration(cfg.JWT.TTLMinutes) * time.Minute

	svcs := server.Services{
		Auth:        service.NewAuthService(userRepo, sellerRepo, adminRepo, cfg.JWT.Secret, tokenTTL),
		User:        service.NewUserService(userRepo),
		SellerAdmin: service.NewSellerAdminService(sellerRepo),
		Category:    service.NewCategoryService(categoryRepo, images),
		Product:     service.NewProductService(db, productRepo, categoryRepo, sellerRepo, orderRepo, returnRepo, images),
		Checkout:    service.NewCheckoutService(db, userRepo, productRepo, orderRepo),
		Order:       service.NewOrderService(orderRepo, userRepo),
		Return:      service.NewReturnService(returnRepo, orderRepo, productRepo),
		Address:     service.NewAddressService(addressRepo, userRepo),
		Payment:     service.NewPaymentService(paymentRepo, userRepo),
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(svcs, cfg.JWT.Secret, cfg.UploadDir)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
