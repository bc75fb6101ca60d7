package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"

	listingRepo "homeshow/database/repository/listing"
	"homeshow/models"
	"homeshow/utils"
)

const (
	// PriceTolerance widens the budget into a search band on both sides.
	PriceTolerance = 50_000
	// SqftTolerance relaxes the caller's square footage floor.
	SqftTolerance = 300
	// MaxRecommendations caps how many listings a caller is shown.
	MaxRecommendations = 3
)

// MatchingService recommends listings for a caller profile. When the
// profile is incomplete the validation problems are returned instead of
// listings, so the conversation layer can ask follow-up questions.
type MatchingService interface {
	RecommendProperties(ctx context.Context, profile models.CallerProfile) ([]models.Listing, []string, error)
}

type DefaultMatchingService struct {
	Repo     listingRepo.ListingRepository
	Embedder Embedder
}

func NewMatchingService(repo listingRepo.ListingRepository, embedder Embedder) *DefaultMatchingService {
	return &DefaultMatchingService{Repo: repo, Embedder: embedder}
}

func (s *DefaultMatchingService) RecommendProperties(ctx context.Context, profile models.CallerProfile) ([]models.Listing, []string, error) {
	logger := utils.GetLogger().Sugar()

	if errs := ValidateProfile(profile); len(errs) > 0 {
		logger.Debugw("profile failed validation", "problems", errs)
		return nil, errs, nil
	}

	normalized := NormalizeProfile(ApplyDefaults(profile))

	budget, err := strconv.Atoi(normalized.Budget)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid normalized budget %q: %w", normalized.Budget, err)
	}
	sqft, err := strconv.Atoi(normalized.Sqft)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid normalized sqft %q: %w", normalized.Sqft, err)
	}

	criteria := listingRepo.ListingSearchCriteria{
		City:          normalized.Location,
		PropertyType:  normalized.PropertyType,
		MinSquareFeet: sqft - SqftTolerance,
		MinPrice:      budget - PriceTolerance,
		MaxPrice:      budget + PriceTolerance,
		MinBedrooms:   normalized.Bedrooms,
		MinBathrooms:  normalized.Bathrooms,
	}

	candidates, err := s.Repo.Search(criteria)
	if err != nil {
		return nil, nil, fmt.Errorf("listing search failed: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil, nil
	}

	queryVec, err := s.Embedder.Embed(ctx, ProfileQueryText(normalized))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to embed profile query: %w", err)
	}

	ranked := rankBySimilarity(candidates, queryVec)
	if len(ranked) > MaxRecommendations {
		ranked = ranked[:MaxRecommendations]
	}

	// Embeddings are an index detail and never leave the service.
	for i := range ranked {
		ranked[i].Embedding = nil
	}

	logger.Debugw("recommended listings",
		"city", normalized.Location,
		"candidates", len(candidates),
		"returned", len(ranked))
	return ranked, nil, nil
}

// scoredListing holds temporary ranking details.
type scoredListing struct {
	Listing models.Listing
	Score   float64
}

func rankBySimilarity(listings []models.Listing, queryVec []float32) []models.Listing {
	resultsCh := make(chan scoredListing, len(listings))
	var wg sync.WaitGroup

	for _, l := range listings {
		wg.Add(1)
		go func(l models.Listing) {
			defer wg.Done()
			resultsCh <- scoredListing{Listing: l, Score: cosineSimilarity(queryVec, l.Embedding)}
		}(l)
	}

	wg.Wait()
	close(resultsCh)

	var scores []scoredListing
	for s := range resultsCh {
		scores = append(scores, s)
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	ranked := make([]models.Listing, 0, len(scores))
	for _, s := range scores {
		ranked = append(ranked, s.Listing)
	}
	return ranked
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
