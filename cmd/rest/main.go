package main

import (
	"context"
	"log"

	"braik-ai-be/internal/bootstrap"
	"braik-ai-be/internal/config"
	"braik-ai-be/internal/server"
	"braik-ai-be/internal/tracer"

	"github.com/fatih/color"
)

func main() {
	color.Cyan("Braik AI - business memory backend")

	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	go func() {
		log.Println("Background: starting analysis worker")
		if err := container.AnalysisBus.Run(context.Background()); err != nil {
			log.Printf("Background analysis worker error: %v", err)
		}
	}()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
