package assistant

import (
	"context"
	"errors"
	"testing"

	genai "github.com/google/generative-ai-go/genai"

	"homeshow/models"
	"homeshow/services/schedule"
)

type fakeMatcher struct {
	listings   []models.Listing
	problems   []string
	err        error
	gotProfile models.CallerProfile
}

func (f *fakeMatcher) RecommendProperties(ctx context.Context, profile models.CallerProfile) ([]models.Listing, []string, error) {
	f.gotProfile = profile
	return f.listings, f.problems, f.err
}

type fakeScheduler struct {
	payload       *models.AvailabilityPayload
	confirmation  string
	err           error
	gotPreference string
	gotSlot       string
	gotListing    models.Listing
}

func (f *fakeScheduler) GetAvailability(ctx context.Context, profile models.CallerProfile, preference string) (*models.AvailabilityPayload, error) {
	f.gotPreference = preference
	return f.payload, f.err
}

func (f *fakeScheduler) ScheduleShowing(ctx context.Context, profile models.CallerProfile, listing models.Listing, selectedSlot string) (string, error) {
	f.gotListing = listing
	f.gotSlot = selectedSlot
	return f.confirmation, f.err
}

func TestDispatch_RecommendProperties(t *testing.T) {
	matcher := &fakeMatcher{listings: []models.Listing{{ListingID: "MLS-1042", Address: "627 Logan Blvd"}}}
	d := NewToolDispatcher(matcher, &fakeScheduler{})

	call := genai.FunctionCall{
		Name: toolRecommendProperties,
		Args: map[string]any{
			"profile": map[string]any{
				"name":      "Dana Reyes",
				"phone":     "3125550142",
				"location":  "Chicago",
				"bedrooms":  float64(3),
				"bathrooms": 2.5,
			},
		},
	}

	result, err := d.Dispatch(context.Background(), call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matcher.gotProfile.Name != "Dana Reyes" || matcher.gotProfile.Bedrooms != 3 {
		t.Errorf("profile not decoded: %+v", matcher.gotProfile)
	}
	listings, ok := result["properties"].([]models.Listing)
	if !ok || len(listings) != 1 || listings[0].ListingID != "MLS-1042" {
		t.Errorf("unexpected result: %v", result)
	}
}

func TestDispatch_RecommendReportsValidationProblems(t *testing.T) {
	matcher := &fakeMatcher{problems: []string{"Name is required and cannot be empty."}}
	d := NewToolDispatcher(matcher, &fakeScheduler{})

	result, err := d.Dispatch(context.Background(), genai.FunctionCall{
		Name: toolRecommendProperties,
		Args: map[string]any{"profile": map[string]any{}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result["validation_errors"]; !ok {
		t.Errorf("expected validation_errors in result, got %v", result)
	}
}

func TestDispatch_GetAvailabilityPassesPreferenceVerbatim(t *testing.T) {
	scheduler := &fakeScheduler{payload: &models.AvailabilityPayload{
		CurrentTime:    "Tuesday, March 10 at 8:05 AM CDT",
		AvailableSlots: []string{"Wednesday, March 11 at 9:00 AM"},
	}}
	d := NewToolDispatcher(&fakeMatcher{}, scheduler)

	result, err := d.Dispatch(context.Background(), genai.FunctionCall{
		Name: toolGetAvailability,
		Args: map[string]any{
			"profile":              map[string]any{"name": "Dana Reyes"},
			"date_time_preference": "next friday",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scheduler.gotPreference != "next friday" {
		t.Errorf("preference = %q, want it passed through unchanged", scheduler.gotPreference)
	}
	slots, ok := result["available_slots"].([]string)
	if !ok || len(slots) != 1 {
		t.Errorf("unexpected slots in result: %v", result)
	}
}

func TestDispatch_ScheduleAppointment(t *testing.T) {
	scheduler := &fakeScheduler{confirmation: "Your appointment has been scheduled."}
	d := NewToolDispatcher(&fakeMatcher{}, scheduler)

	result, err := d.Dispatch(context.Background(), genai.FunctionCall{
		Name: toolScheduleAppointment,
		Args: map[string]any{
			"profile":            map[string]any{"name": "Dana Reyes"},
			"property":           map[string]any{"listing_id": "MLS-1042", "address": "627 Logan Blvd", "city": "Chicago"},
			"selected_date_time": "Friday, March 13 at 3:00 PM",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scheduler.gotSlot != "Friday, March 13 at 3:00 PM" {
		t.Errorf("slot = %q", scheduler.gotSlot)
	}
	if scheduler.gotListing.ListingID != "MLS-1042" {
		t.Errorf("listing not decoded: %+v", scheduler.gotListing)
	}
	if result["confirmation"] != "Your appointment has been scheduled." {
		t.Errorf("unexpected result: %v", result)
	}
}

func TestDispatch_UnparsableSelectionBecomesToolError(t *testing.T) {
	scheduler := &fakeScheduler{err: schedule.ErrUnparsableSelection}
	d := NewToolDispatcher(&fakeMatcher{}, scheduler)

	result, err := d.Dispatch(context.Background(), genai.FunctionCall{
		Name: toolScheduleAppointment,
		Args: map[string]any{
			"profile":            map[string]any{},
			"property":           map[string]any{"listing_id": "MLS-1042", "address": "627 Logan Blvd", "city": "Chicago"},
			"selected_date_time": "whenever",
		},
	})
	if err != nil {
		t.Fatalf("expected unparsable selection to be reported in-band, got error %v", err)
	}
	if _, ok := result["error"]; !ok {
		t.Errorf("expected error message in result, got %v", result)
	}
}

func TestDispatch_UnknownTool(t *testing.T) {
	d := NewToolDispatcher(&fakeMatcher{}, &fakeScheduler{})
	if _, err := d.Dispatch(context.Background(), genai.FunctionCall{Name: "transfer_money"}); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestDispatch_ServiceFailureSurfaces(t *testing.T) {
	scheduler := &fakeScheduler{err: errors.New("calendar fetch failed")}
	d := NewToolDispatcher(&fakeMatcher{}, scheduler)

	if _, err := d.Dispatch(context.Background(), genai.FunctionCall{
		Name: toolGetAvailability,
		Args: map[string]any{"profile": map[string]any{}},
	}); err == nil {
		t.Fatal("expected availability failure to surface")
	}
}
