package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"

	"homeshow/models"
	"homeshow/services/matching"
	"homeshow/services/schedule"
)

const (
	toolRecommendProperties = "recommend_properties"
	toolGetAvailability     = "get_agent_availability"
	toolScheduleAppointment = "schedule_appointment"
)

func profileSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "Everything collected about the caller so far. Omit fields the caller has not answered.",
		Properties: map[string]*genai.Schema{
			"name":          {Type: genai.TypeString},
			"phone":         {Type: genai.TypeString},
			"buyOrRent":     {Type: genai.TypeString, Description: "Either 'buy' or 'rent'."},
			"location":      {Type: genai.TypeString, Description: "City the caller wants to live in."},
			"property_type": {Type: genai.TypeString, Description: "One of: Multi-Family, Condo, Single Family, Townhouse."},
			"sqft":          {Type: genai.TypeString},
			"budget":        {Type: genai.TypeString},
			"bedrooms":      {Type: genai.TypeInteger},
			"bathrooms":     {Type: genai.TypeNumber},
			"must_haves":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"good_to_haves": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
	}
}

func listingSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "The listing the caller picked, exactly as returned by recommend_properties.",
		Properties: map[string]*genai.Schema{
			"listing_id":    {Type: genai.TypeString},
			"address":       {Type: genai.TypeString},
			"neighborhood":  {Type: genai.TypeString},
			"city":          {Type: genai.TypeString},
			"state":         {Type: genai.TypeString},
			"zip_code":      {Type: genai.TypeString},
			"price":         {Type: genai.TypeInteger},
			"bedrooms":      {Type: genai.TypeInteger},
			"bathrooms":     {Type: genai.TypeNumber},
			"square_feet":   {Type: genai.TypeInteger},
			"property_type": {Type: genai.TypeString},
			"description":   {Type: genai.TypeString},
		},
		Required: []string{"listing_id", "address", "city"},
	}
}

// agentTools declares the callable surface the model plans around.
func agentTools() []*genai.Tool {
	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        toolRecommendProperties,
				Description: "Find up to three listings matching the caller's profile. Returns validation problems instead when the profile is incomplete.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{"profile": profileSchema()},
					Required:   []string{"profile"},
				},
			},
			{
				Name:        toolGetAvailability,
				Description: "List open showing times. Pass relative date phrases like 'next friday' through unchanged.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"profile": profileSchema(),
						"date_time_preference": {
							Type:        genai.TypeString,
							Description: "The caller's stated day or time preference, verbatim. Optional.",
						},
					},
					Required: []string{"profile"},
				},
			},
			{
				Name:        toolScheduleAppointment,
				Description: "Book a showing at one of the offered times and confirm it to the caller.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"profile":  profileSchema(),
						"property": listingSchema(),
						"selected_date_time": {
							Type:        genai.TypeString,
							Description: "The slot the caller chose, verbatim.",
						},
					},
					Required: []string{"profile", "property", "selected_date_time"},
				},
			},
		},
	}}
}

// ToolDispatcher routes model function calls to the domain services.
type ToolDispatcher struct {
	Matcher   matching.MatchingService
	Scheduler schedule.SchedulingService
}

func NewToolDispatcher(matcher matching.MatchingService, scheduler schedule.SchedulingService) *ToolDispatcher {
	return &ToolDispatcher{Matcher: matcher, Scheduler: scheduler}
}

type recommendArgs struct {
	Profile models.CallerProfile `json:"profile"`
}

type availabilityArgs struct {
	Profile            models.CallerProfile `json:"profile"`
	DateTimePreference string               `json:"date_time_preference"`
}

type scheduleArgs struct {
	Profile          models.CallerProfile `json:"profile"`
	Property         models.Listing       `json:"property"`
	SelectedDateTime string               `json:"selected_date_time"`
}

// Dispatch executes one function call and returns the payload handed back
// to the model as the function response.
func (d *ToolDispatcher) Dispatch(ctx context.Context, call genai.FunctionCall) (map[string]any, error) {
	raw, err := json.Marshal(call.Args)
	if err != nil {
		return nil, fmt.Errorf("encode args for %s: %w", call.Name, err)
	}

	switch call.Name {
	case toolRecommendProperties:
		var args recommendArgs
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", call.Name, err)
		}
		listings, problems, err := d.Matcher.RecommendProperties(ctx, args.Profile)
		if err != nil {
			return nil, err
		}
		if len(problems) > 0 {
			return map[string]any{"validation_errors": problems}, nil
		}
		return map[string]any{"properties": listings}, nil

	case toolGetAvailability:
		var args availabilityArgs
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", call.Name, err)
		}
		payload, err := d.Scheduler.GetAvailability(ctx, args.Profile, args.DateTimePreference)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"current_time":    payload.CurrentTime,
			"available_slots": payload.AvailableSlots,
		}, nil

	case toolScheduleAppointment:
		var args scheduleArgs
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", call.Name, err)
		}
		confirmation, err := d.Scheduler.ScheduleShowing(ctx, args.Profile, args.Property, args.SelectedDateTime)
		if errors.Is(err, schedule.ErrUnparsableSelection) {
			return map[string]any{"error": "Sorry, I couldn't understand the selected time. Please try again."}, nil
		}
		if err != nil {
			return nil, err
		}
		return map[string]any{"confirmation": confirmation}, nil

	default:
		return nil, fmt.Errorf("unknown tool %q", call.Name)
	}
}
