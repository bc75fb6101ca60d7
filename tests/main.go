// Seeds the listings collection from a JSON dataset, generating the
// searchable document text and its embedding for every listing.
//
// Usage: go run ./tests -file listings.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"homeshow/config"
	"homeshow/database"
	listingRepo "homeshow/database/repository/listing"
	"homeshow/models"
	"homeshow/services/matching"
)

func generatePropertyText(l models.Listing) string {
	var parts []string

	propertyType := l.PropertyType
	if propertyType == "" {
		propertyType = "Property"
	}
	parts = append(parts, fmt.Sprintf("%s for sale", propertyType))
	if l.Bedrooms > 0 {
		parts = append(parts, fmt.Sprintf("with %d %s", l.Bedrooms, plural("bedroom", l.Bedrooms)))
	}
	if l.Bathrooms > 0 {
		parts = append(parts, fmt.Sprintf("and %g %s", l.Bathrooms, pluralF("bathroom", l.Bathrooms)))
	}
	if l.Neighborhood != "" {
		parts = append(parts, fmt.Sprintf("in %s,", l.Neighborhood))
	}
	if l.City != "" && l.State != "" {
		parts = append(parts, fmt.Sprintf("%s, %s.", l.City, l.State))
	}
	if l.Price > 0 {
		parts = append(parts, fmt.Sprintf("Priced at $%d", l.Price))
	}
	if l.SquareFeet > 0 {
		parts = append(parts, fmt.Sprintf("with %d square feet of living space.", l.SquareFeet))
	}
	if l.LotSize > 0 {
		parts = append(parts, fmt.Sprintf("The lot size is %g acres.", l.LotSize))
	}
	if l.Address != "" {
		parts = append(parts, fmt.Sprintf("Located at %s.", l.Address))
	}
	if l.YearBuilt > 0 {
		parts = append(parts, fmt.Sprintf("Built in %d.", l.YearBuilt))
	}
	if l.MLSStatus != "" {
		parts = append(parts, fmt.Sprintf("MLS Status: %s.", l.MLSStatus))
	}
	if l.DaysOnMarket > 0 {
		parts = append(parts, fmt.Sprintf("On the market for %d days.", l.DaysOnMarket))
	}
	if l.Description != "" {
		parts = append(parts, l.Description)
	}

	return strings.Join(parts, " ")
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func pluralF(word string, n float64) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func main() {
	file := flag.String("file", "listings.json", "path to the listings JSON dataset")
	flag.Parse()

	config.LoadConfig()
	database.InitDB()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}

	var listings []models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		log.Fatalf("Failed to parse dataset: %v", err)
	}
	log.Printf("Loaded %d listings from %s", len(listings), *file)

	repo := listingRepo.NewMongoListingRepo()
	embedder := matching.NewGeminiEmbedder(config.AppConfig.GeminiAPIKey)

	ctx := context.Background()
	for i, l := range listings {
		l.FullText = generatePropertyText(l)

		vec, err := embedder.Embed(ctx, l.FullText)
		if err != nil {
			log.Printf("Embedding failed for %s, retrying once: %v", l.ListingID, err)
			time.Sleep(20 * time.Second)
			vec, err = embedder.Embed(ctx, l.FullText)
			if err != nil {
				log.Fatalf("Embedding failed for %s: %v", l.ListingID, err)
			}
		}
		l.Embedding = vec

		if err := repo.Upsert(l); err != nil {
			log.Fatalf("Failed to upsert %s: %v", l.ListingID, err)
		}
		log.Printf("Inserted %d of %d listings.", i+1, len(listings))
	}
}
