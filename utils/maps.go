package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"encoding/json"

	"cabdesk/models"
)

// DistanceMatrixClient talks to the Google Distance Matrix API. One segment
// lookup per call; the route resolver sums segments.
type DistanceMatrixClient struct {
	APIKey string
	Region string
	HTTP   *http.Client
}

func NewDistanceMatrixClient() *DistanceMatrixClient {
	region := os.Getenv("MAPS_REGION")
	if region == "" {
		region = "in"
	}
	return &DistanceMatrixClient{
		APIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		Region: region,
		HTTP:   &http.Client{Timeout: 10 * time.Second},
	}
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int    `json:"value"` // meters
				Text  string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Value int    `json:"value"` // seconds
				Text  string `json:"text"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// SegmentResult is one point-to-point lookup. Duration comes back typed in
// seconds; no text parsing happens downstream.
type SegmentResult struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	DistanceKm   int    `json:"distance"`
	DurationSecs int    `json:"durationSeconds"`
	DurationText string `json:"duration"`
}

// ResolveDistance looks up road distance and travel time between two
// addresses. Distance is rounded to whole kilometers, matching how tariffs
// are quoted.
func (c *DistanceMatrixClient) ResolveDistance(ctx context.Context, origin, destination string) (SegmentResult, error) {
	if c.APIKey == "" {
		return SegmentResult{}, fmt.Errorf("GOOGLE_MAPS_API_KEY is not set")
	}

	q := url.Values{}
	q.Set("origins", origin)
	q.Set("destinations", destination)
	q.Set("region", c.Region)
	q.Set("key", c.APIKey)
	endpoint := "https://maps.googleapis.com/maps/api/distancematrix/json?" + q.Encode()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return SegmentResult{}, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return SegmentResult{}, err
	}
	defer resp.Body.Close()

	requestID := resp.Header.Get("X-Request-Id")
	bodyBytes, _ := io.ReadAll(resp.Body)
	elapsed := time.Since(start)

	if resp.StatusCode != http.StatusOK {
		LogExternalAPI(models.APILog{
			Provider:        "GoogleMaps",
			Endpoint:        "/maps/api/distancematrix/json",
			RequestID:       &requestID,
			RequestPayload:  map[string]string{"origins": origin, "destinations": destination},
			ResponsePayload: string(bodyBytes),
			StatusCode:      resp.StatusCode,
			DurationMs:      int(elapsed.Milliseconds()),
		})
		return SegmentResult{}, fmt.Errorf("distance matrix api error: %s", resp.Status)
	}

	var result distanceMatrixResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return SegmentResult{}, err
	}

	LogExternalAPI(models.APILog{
		Provider:        "GoogleMaps",
		Endpoint:        "/maps/api/distancematrix/json",
		RequestID:       &requestID,
		RequestPayload:  map[string]string{"origins": origin, "destinations": destination},
		ResponsePayload: result,
		StatusCode:      resp.StatusCode,
		DurationMs:      int(elapsed.Milliseconds()),
	})

	if result.Status != "OK" || len(result.Rows) == 0 || len(result.Rows[0].Elements) == 0 {
		return SegmentResult{}, fmt.Errorf("distance matrix api error: %s", result.Status)
	}

	element := result.Rows[0].Elements[0]
	if element.Status != "OK" {
		return SegmentResult{}, fmt.Errorf("no route between %q and %q: %s", origin, destination, element.Status)
	}

	return SegmentResult{
		Origin:       origin,
		Destination:  destination,
		DistanceKm:   int(float64(element.Distance.Value)/1000.0 + 0.5),
		DurationSecs: element.Duration.Value,
		DurationText: element.Duration.Text,
	}, nil
}
