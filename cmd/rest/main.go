package main

import (
	"context"
	"log"

	"corp-portal-be/internal/bootstrap"
	"corp-portal-be/internal/config"
	"corp-portal-be/internal/server"
	"corp-portal-be/internal/tracer"
	"corp-portal-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	if err := container.ConsumerService.Start(context.Background()); err != nil {
		log.Printf("Audit consumer failed to start: %v", err)
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
