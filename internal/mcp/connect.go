package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/freestride/internal/garmin"
	"github.com/claude/freestride/internal/workout"
)

// Connect abstracts the Garmin Connect API for MCP tools. *garmin.Client
// satisfies this interface; tests substitute a fake.
type Connect interface {
	ListWorkouts(ctx context.Context, start, limit int) ([]garmin.WorkoutSummary, error)
	GetWorkout(ctx context.Context, id int64) (json.RawMessage, error)
	DownloadWorkout(ctx context.Context, id int64) ([]byte, error)
	UploadWorkout(ctx context.Context, doc *workout.Document) (json.RawMessage, error)
	ListActivities(ctx context.Context, start, limit int) ([]garmin.Activity, error)
}

// Compile-time check: *garmin.Client satisfies Connect.
var _ Connect = (*garmin.Client)(nil)
