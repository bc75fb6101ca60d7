package matching

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	listingRepo "homeshow/database/repository/listing"
	"homeshow/models"
)

type fakeRepo struct {
	listings     []models.Listing
	err          error
	lastCriteria listingRepo.ListingSearchCriteria
}

func (f *fakeRepo) GetByID(id string) (*models.Listing, error) { return nil, errors.New("not used") }

func (f *fakeRepo) Search(criteria listingRepo.ListingSearchCriteria) ([]models.Listing, error) {
	f.lastCriteria = criteria
	return f.listings, f.err
}

func (f *fakeRepo) Upsert(listing models.Listing) error { return nil }

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.vec, f.err
}

func listingWithVec(id string, vec []float32) models.Listing {
	return models.Listing{ListingID: id, Address: id + " Main St", City: "Chicago", Embedding: vec}
}

func TestRecommendProperties_ValidationShortCircuits(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewMatchingService(repo, &fakeEmbedder{})

	listings, problems, err := svc.RecommendProperties(context.Background(), models.CallerProfile{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listings != nil {
		t.Errorf("expected no listings for invalid profile, got %d", len(listings))
	}
	if len(problems) == 0 {
		t.Error("expected validation problems to be reported")
	}
	if repo.lastCriteria != (listingRepo.ListingSearchCriteria{}) {
		t.Error("repo should not be queried for an invalid profile")
	}
}

func TestRecommendProperties_CriteriaTolerances(t *testing.T) {
	repo := &fakeRepo{listings: []models.Listing{listingWithVec("MLS-1", []float32{1, 0})}}
	svc := NewMatchingService(repo, &fakeEmbedder{vec: []float32{1, 0}})

	_, _, err := svc.RecommendProperties(context.Background(), completeProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := repo.lastCriteria
	if c.City != "Chicago" || c.PropertyType != "Condo" {
		t.Errorf("criteria city/type = %q/%q", c.City, c.PropertyType)
	}
	if c.MinPrice != 400000 || c.MaxPrice != 500000 {
		t.Errorf("price band = [%d, %d], want [400000, 500000]", c.MinPrice, c.MaxPrice)
	}
	if c.MinSquareFeet != 1500 {
		t.Errorf("min square feet = %d, want 1500", c.MinSquareFeet)
	}
	if c.MinBedrooms != 2 || c.MinBathrooms != 2 {
		t.Errorf("beds/baths = %d/%g", c.MinBedrooms, c.MinBathrooms)
	}
}

func TestRecommendProperties_RanksAndCaps(t *testing.T) {
	query := []float32{1, 0}
	var candidates []models.Listing
	for i := 0; i < 5; i++ {
		angle := float64(i) * 0.3
		vec := []float32{float32(math.Cos(angle)), float32(math.Sin(angle))}
		candidates = append(candidates, listingWithVec(fmt.Sprintf("MLS-%d", i), vec))
	}
	repo := &fakeRepo{listings: candidates}
	svc := NewMatchingService(repo, &fakeEmbedder{vec: query})

	listings, problems, err := svc.RecommendProperties(context.Background(), completeProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if problems != nil {
		t.Fatalf("unexpected validation problems: %v", problems)
	}
	if len(listings) != MaxRecommendations {
		t.Fatalf("got %d listings, want %d", len(listings), MaxRecommendations)
	}
	want := []string{"MLS-0", "MLS-1", "MLS-2"}
	for i, w := range want {
		if listings[i].ListingID != w {
			t.Errorf("rank %d = %s, want %s", i, listings[i].ListingID, w)
		}
	}
	for _, l := range listings {
		if l.Embedding != nil {
			t.Errorf("listing %s still carries its embedding", l.ListingID)
		}
	}
}

func TestRecommendProperties_EmptySearchSkipsEmbedding(t *testing.T) {
	repo := &fakeRepo{}
	embedder := &fakeEmbedder{err: errors.New("should not be called")}
	svc := NewMatchingService(repo, embedder)

	listings, problems, err := svc.RecommendProperties(context.Background(), completeProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listings != nil || problems != nil {
		t.Errorf("expected empty result, got listings=%v problems=%v", listings, problems)
	}
}

func TestRecommendProperties_RepoFailure(t *testing.T) {
	repo := &fakeRepo{err: errors.New("mongo down")}
	svc := NewMatchingService(repo, &fakeEmbedder{vec: []float32{1}})

	if _, _, err := svc.RecommendProperties(context.Background(), completeProfile()); err == nil {
		t.Fatal("expected error when the listing search fails")
	}
}

func TestCosineSimilarity(t *testing.T) {
	if got := cosineSimilarity([]float32{1, 0}, []float32{1, 0}); math.Abs(got-1) > 1e-9 {
		t.Errorf("identical vectors = %g, want 1", got)
	}
	if got := cosineSimilarity([]float32{1, 0}, []float32{0, 1}); math.Abs(got) > 1e-9 {
		t.Errorf("orthogonal vectors = %g, want 0", got)
	}
	if got := cosineSimilarity([]float32{1, 0}, nil); got != 0 {
		t.Errorf("missing embedding = %g, want 0", got)
	}
	if got := cosineSimilarity([]float32{1, 0}, []float32{1}); got != 0 {
		t.Errorf("mismatched lengths = %g, want 0", got)
	}
}
