package garmin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/freestride/internal/workout"
)

type staticToken string

func (t staticToken) Token(_ context.Context) (string, error) { return string(t), nil }

// TestListWorkouts verifies path, query parameters, and the bearer header.
func TestListWorkouts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/workout-service/workouts" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("limit = %q, want 10", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`[{"workoutId": 42, "workoutName": "Tempo", "sportType": {"sportTypeKey": "running"}}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("tok-1"))
	workouts, err := c.ListWorkouts(context.Background(), 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(workouts) != 1 || workouts[0].ID != 42 || workouts[0].SportType.Key != "running" {
		t.Errorf("workouts = %+v", workouts)
	}
}

// TestUploadWorkout verifies that the compiled document is POSTed as-is
// and the provider response passed back raw.
func TestUploadWorkout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/workout-service/workout" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var doc map[string]any
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			t.Fatal(err)
		}
		if doc["workoutName"] != "Easy" {
			t.Errorf("workoutName = %v", doc["workoutName"])
		}
		w.Write([]byte(`{"workoutId": 99}`))
	}))
	defer srv.Close()

	doc, err := workout.Compile("Easy", "running", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	c := NewClient(srv.URL, staticToken("tok-1"))
	resp, err := c.UploadWorkout(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(resp), `"workoutId": 99`) {
		t.Errorf("response = %s", resp)
	}
}

// TestUploadWorkoutSingleAttempt verifies that a failed upload is not
// retried: one call, one request.
func TestUploadWorkoutSingleAttempt(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	doc, err := workout.Compile("Easy", "running", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	c := NewClient(srv.URL, staticToken("tok-1"))
	if _, err := c.UploadWorkout(context.Background(), doc); err == nil {
		t.Fatal("expected error for 429 response")
	} else if !strings.Contains(err.Error(), "429") {
		t.Errorf("error = %v, want the status surfaced", err)
	}
	if requests != 1 {
		t.Errorf("requests = %d, want exactly 1 attempt", requests)
	}
}

// TestGetWorkoutRaw verifies that provider JSON is passed through
// unmodified.
func TestGetWorkoutRaw(t *testing.T) {
	const payload = `{"workoutId":7,"workoutName":"Hills","custom":{"nested":true}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/workout-service/workout/7" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("tok-1"))
	raw, err := c.GetWorkout(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != payload {
		t.Errorf("raw = %s, want unmodified payload", raw)
	}
}

// TestTokenSourceFailure verifies that a dead session fails before any
// request is made.
func TestTokenSourceFailure(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := NewClient(srv.URL, failingToken{})
	if _, err := c.ListActivities(context.Background(), 0, 5); err == nil {
		t.Fatal("expected token error")
	}
	if requests != 0 {
		t.Errorf("requests = %d, want 0 when the token source fails", requests)
	}
}

type failingToken struct{}

func (failingToken) Token(_ context.Context) (string, error) {
	return "", context.DeadlineExceeded
}
