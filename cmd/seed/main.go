package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/config"
	"github.com/linskybing/litreview-go/internal/config/db"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/internal/seed"
)

func main() {
	file := flag.String("file", "fixtures.yaml", "YAML fixture to load")
	flag.Parse()

	config.LoadConfig()
	db.Init()

	fh, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Failed to open fixture: %v", err)
	}
	defer fh.Close()

	fixture, err := seed.Load(fh)
	if err != nil {
		log.Fatalf("Failed to read fixture: %v", err)
	}

	services := application.New(repository.NewRepositories(db.DB))
	sum, err := seed.Apply(context.Background(), services, fixture)
	if err != nil {
		log.Fatalf("Seeding stopped: %v", err)
	}
	log.Printf("Seeded %d users, %d follows, %d blocks, %d tickets, %d reviews",
		sum.Users, sum.Follows, sum.Blocks, sum.Tickets, sum.Reviews)
}
