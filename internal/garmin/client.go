// Package garmin is a thin authenticated client for the Garmin Connect
// API. It holds no credential logic: bearer tokens come from a
// TokenSource, and every operation is a single request — retry and
// backoff policy belong to the caller.
package garmin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/freestride/internal/workout"
)

// DefaultBaseURL is the production Connect API host.
const DefaultBaseURL = "https://connectapi.garmin.com"

// TokenSource supplies a bearer token for Connect API requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client calls the Connect API over HTTP.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// NewClient creates a Connect client. An empty baseURL selects the
// production host.
func NewClient(baseURL string, tokens TokenSource) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("garmin: marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("garmin: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("garmin: token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("garmin: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("garmin: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("garmin: %s %s returned %d: %s", method, path, resp.StatusCode, data)
	}
	return data, nil
}

// WorkoutSummary is one row of the workout listing.
type WorkoutSummary struct {
	ID          int64    `json:"workoutId"`
	Name        string   `json:"workoutName"`
	SportType   SportRef `json:"sportType"`
	UpdatedDate string   `json:"updatedDate"`
}

// SportRef is the sport key embedded in listing rows.
type SportRef struct {
	Key string `json:"sportTypeKey"`
}

// Activity is one row of the recent-activity listing.
type Activity struct {
	ID        int64       `json:"activityId"`
	Name      string      `json:"activityName"`
	StartTime string      `json:"startTimeLocal"`
	Type      ActivityRef `json:"activityType"`
}

// ActivityRef is the activity type key embedded in listing rows.
type ActivityRef struct {
	Key string `json:"typeKey"`
}

// ListWorkouts returns stored workouts, newest first.
func (c *Client) ListWorkouts(ctx context.Context, start, limit int) ([]WorkoutSummary, error) {
	params := url.Values{}
	params.Set("start", strconv.Itoa(start))
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.do(ctx, http.MethodGet, "/workout-service/workouts", params, nil)
	if err != nil {
		return nil, err
	}

	var workouts []WorkoutSummary
	if err := json.Unmarshal(body, &workouts); err != nil {
		return nil, fmt.Errorf("garmin: decode workouts: %w", err)
	}
	return workouts, nil
}

// GetWorkout returns the full provider document for one workout,
// unmodified.
func (c *Client) GetWorkout(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/workout-service/workout/"+strconv.FormatInt(id, 10), nil, nil)
}

// DownloadWorkout returns the FIT export of one workout.
func (c *Client) DownloadWorkout(ctx context.Context, id int64) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/workout-service/workout/FIT/"+strconv.FormatInt(id, 10), nil, nil)
}

// UploadWorkout POSTs one compiled workout document. Exactly one attempt
// per call.
func (c *Client) UploadWorkout(ctx context.Context, doc *workout.Document) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/workout-service/workout", nil, doc)
}

// ListActivities returns recent activities, newest first.
func (c *Client) ListActivities(ctx context.Context, start, limit int) ([]Activity, error) {
	params := url.Values{}
	params.Set("start", strconv.Itoa(start))
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.do(ctx, http.MethodGet, "/activitylist-service/activities/search/activities", params, nil)
	if err != nil {
		return nil, err
	}

	var activities []Activity
	if err := json.Unmarshal(body, &activities); err != nil {
		return nil, fmt.Errorf("garmin: decode activities: %w", err)
	}
	return activities, nil
}
