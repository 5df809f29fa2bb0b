package main

import (
	"context"
	"log"
	"time"

	"nordstudio/internal/config"
	"nordstudio/internal/model"
	"nordstudio/internal/store"
)

// demoPortfolioID is fixed so reruns overwrite instead of duplicating.
const demoPortfolioID = "cityhall"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	ctx := context.Background()

	var st store.Store
	if cfg.FirestoreProjectID != "" {
		fs, err := store.NewFirestore(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
		if err != nil {
			log.Fatalf("Failed to connect to Firestore: %v", err)
		}
		defer fs.Close()
		st = fs
		log.Printf("Connected to Firestore project %q", cfg.FirestoreProjectID)
	} else {
		log.Fatal("FIRESTORE_PROJECT_ID not set; the in-memory store has nothing to seed across processes")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	demo := model.Portfolio{
		Title:       "CITYHALL",
		Description: "A comprehensive architectural photography series documenting the intersection of civic architecture and urban life.",
		Images: []string{
			"https://images.unsplash.com/photo-1511818966892-d7d671e672a2?w=1200&h=800&fit=crop&q=80",
			"https://images.unsplash.com/photo-1582407947304-fd86f028f716?w=800&h=600&fit=crop&q=80",
			"https://images.unsplash.com/photo-1565008447742-97f6f38c985c?w=800&h=600&fit=crop&q=80",
		},
		Client:    "City Planning Department",
		Year:      "2024",
		Category:  "Architectural Photography",
		CreatedAt: now,
		UpdatedAt: now,
	}

	fields, err := demo.Fields()
	if err != nil {
		log.Fatalf("Failed to encode demo portfolio: %v", err)
	}
	if err := st.Set(ctx, model.CollectionPortfolios, demoPortfolioID, fields); err != nil {
		log.Fatalf("Failed to seed demo portfolio: %v", err)
	}

	log.Printf("Seeded demo portfolio %q", demoPortfolioID)
}
