// Command seed uploads the built-in assessment catalogs to MongoDB so they
// can be edited without a redeploy. Re-running it replaces each language's
// stored catalog; it never duplicates questions.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"skillbridge/internal/catalog"
	"skillbridge/internal/config"
	"skillbridge/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	questionRepo := repository.NewQuestionRepo(client.Database(cfg.MongoDatabase))

	for _, lang := range catalog.Languages() {
		questions := catalog.BaseSequence(lang)
		if err := questionRepo.ReplaceLanguage(ctx, lang, questions); err != nil {
			log.Fatalf("Failed to seed %s questions: %v", lang, err)
		}
		log.Printf("Seeded %d questions for language %q", len(questions), lang)
	}

	log.Println("All questions uploaded!")
}
