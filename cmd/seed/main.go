package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"climatewise/internal/catalog"
	"climatewise/internal/config"
	"climatewise/internal/repository"
)

// Seeds the catalog collections from the built-in data. Idempotent: a
// collection that already has documents is left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	catalogRepo := repository.NewCatalogRepo(db)

	seeded := 0

	count, err := catalogRepo.Count(ctx, catalog.KindQuestion)
	if err != nil {
		log.Fatalf("Failed to count questions: %v", err)
	}
	if count == 0 {
		questions := catalog.DefaultQuestions()
		if err := catalogRepo.SeedQuestions(ctx, questions); err != nil {
			log.Fatalf("Failed to seed questions: %v", err)
		}
		fmt.Printf("Seeded %d questions\n", len(questions))
		seeded++
	} else {
		fmt.Printf("Questions already seeded (%d), skipping\n", count)
	}

	count, err = catalogRepo.Count(ctx, catalog.KindRecommendation)
	if err != nil {
		log.Fatalf("Failed to count recommendations: %v", err)
	}
	if count == 0 {
		recs := catalog.DefaultRecommendations()
		if err := catalogRepo.SeedRecommendations(ctx, recs); err != nil {
			log.Fatalf("Failed to seed recommendations: %v", err)
		}
		fmt.Printf("Seeded %d recommendations\n", len(recs))
		seeded++
	} else {
		fmt.Printf("Recommendations already seeded (%d), skipping\n", count)
	}

	count, err = catalogRepo.Count(ctx, catalog.KindFact)
	if err != nil {
		log.Fatalf("Failed to count facts: %v", err)
	}
	if count == 0 {
		facts := catalog.DefaultFacts()
		if err := catalogRepo.SeedFacts(ctx, facts); err != nil {
			log.Fatalf("Failed to seed facts: %v", err)
		}
		fmt.Printf("Seeded %d facts\n", len(facts))
		seeded++
	} else {
		fmt.Printf("Facts already seeded (%d), skipping\n", count)
	}

	if seeded == 0 {
		fmt.Println("Catalog already populated, nothing to do")
	}
}
