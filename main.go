package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"spicemart-backend/auth"
	"spicemart-backend/config"
	"spicemart-backend/repository"
	"spicemart-backend/routes"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}
	log.Println("connected to MongoDB")

	db := client.Database(cfg.DBName)
	users := repository.NewMongoUserRepository(db)
	catalog := repository.NewMongoCatalogRepository(db)
	messages := repository.NewMongoMessageRepository(db)
	purchases := repository.NewMongoPurchaseRepository(db)

	idxCtx, cancelIdx := context.WithTimeout(context.Background(), 10*time.Second)
	if err := users.EnsureIndexes(idxCtx); err != nil {
		log.Fatalf("index creation failed: %v", err)
	}
	cancelIdx()

	r := gin.Default()
	routes.Setup(r, routes.Deps{
		Users:          users,
		Catalog:        catalog,
		Messages:       messages,
		Purchases:      purchases,
		Issuer:         auth.NewTokenIssuer(cfg.JWTSecret),
		PasswordMinLen: cfg.PasswordMinLen,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
	log.Println("stopped")
}
