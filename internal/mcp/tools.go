package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/freestride/internal/workout"
)

// stepSpecs extracts and decodes the optional "steps" argument. A missing
// argument yields nil, which the compiler turns into the default workout.
func stepSpecs(req mcp.CallToolRequest) ([]workout.StepSpec, error) {
	raw, ok := req.GetArguments()["steps"]
	if !ok || raw == nil {
		return nil, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding steps: %w", err)
	}
	var specs []workout.StepSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("steps must be an array of step objects: %w", err)
	}
	return specs, nil
}

// compileFromRequest builds the workout document from tool arguments.
func compileFromRequest(req mcp.CallToolRequest) (*workout.Document, *mcp.CallToolResult) {
	name, err := req.RequireString("name")
	if err != nil {
		return nil, mcp.NewToolResultError("name parameter is required")
	}
	sport, err := req.RequireString("sport")
	if err != nil {
		return nil, mcp.NewToolResultError("sport parameter is required")
	}

	specs, err := stepSpecs(req)
	if err != nil {
		return nil, mcp.NewToolResultError("invalid steps: " + err.Error())
	}

	doc, err := workout.Compile(name, sport, req.GetString("description", ""), specs)
	if err != nil {
		return nil, mcp.NewToolResultError("workout does not compile: " + err.Error())
	}
	return doc, nil
}

const stepsDescription = "Workout steps. Each step: {kind: warmup|interval|recovery|rest|cooldown, goalType: time|distance|lap_button, goalValue: seconds or meters, targetType: pace|heart_rate (optional), targetMin/targetMax: number or 'M:SS' pace string, description}. A repeat: {kind: repeat, iterations: N, childSteps: [...]} (no nesting). Omit for a default warmup/interval/cooldown session."

// --- Tool definitions ---

var toolPlanWorkout = mcp.NewTool("plan_workout",
	mcp.WithDescription("Compile a workout into the Garmin Connect document without uploading it. Use this to validate steps and preview the exact payload create_workout would send."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Workout name")),
	mcp.WithString("sport", mcp.Required(), mcp.Description("Sport key"), mcp.Enum("running", "cycling", "swimming", "strength_training", "cardio_training", "other")),
	mcp.WithString("description", mcp.Description("Optional workout description")),
	mcp.WithArray("steps", mcp.Description(stepsDescription)),
)

var toolCreateWorkout = mcp.NewTool("create_workout",
	mcp.WithDescription("Compile a workout and upload it to Garmin Connect. Same arguments as plan_workout; returns the provider response including the assigned workoutId."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Workout name")),
	mcp.WithString("sport", mcp.Required(), mcp.Description("Sport key"), mcp.Enum("running", "cycling", "swimming", "strength_training", "cardio_training", "other")),
	mcp.WithString("description", mcp.Description("Optional workout description")),
	mcp.WithArray("steps", mcp.Description(stepsDescription)),
)

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List workouts stored on Garmin Connect, newest first."),
	mcp.WithNumber("start", mcp.Description("Pagination offset. Defaults to 0.")),
	mcp.WithNumber("limit", mcp.Description("Maximum rows to return. Defaults to 20.")),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Fetch the full document of one stored workout, exactly as Garmin Connect returns it."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Workout ID from list_workouts")),
)

var toolDownloadWorkout = mcp.NewTool("download_workout",
	mcp.WithDescription("Download the FIT export of one stored workout to a local file and return its path."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Workout ID from list_workouts")),
)

var toolListActivities = mcp.NewTool("list_activities",
	mcp.WithDescription("List recent recorded activities, newest first."),
	mcp.WithNumber("start", mcp.Description("Pagination offset. Defaults to 0.")),
	mcp.WithNumber("limit", mcp.Description("Maximum rows to return. Defaults to 5.")),
)

// --- Tool handlers ---

// requireConnect fails tools that need the Connect API when no session is
// loaded, with the recovery step in the message.
func (h *handlers) requireConnect() *mcp.CallToolResult {
	if h.gc == nil {
		return mcp.NewToolResultError("not connected to Garmin: import a session with freestride-login and restart")
	}
	return nil
}

func (h *handlers) planWorkout(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, errResult := compileFromRequest(req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := mcp.NewToolResultJSON(doc)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) createWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if errResult := h.requireConnect(); errResult != nil {
		return errResult, nil
	}

	doc, errResult := compileFromRequest(req)
	if errResult != nil {
		return errResult, nil
	}

	resp, err := h.gc.UploadWorkout(ctx, doc)
	if err != nil {
		h.log.Error("mcp create_workout upload", "workout", doc.WorkoutName, "error", err)
		return mcp.NewToolResultError("upload failed: " + err.Error()), nil
	}

	h.log.Info("workout uploaded", "workout", doc.WorkoutName, "sport", doc.SportType.Key)
	return mcp.NewToolResultText(string(resp)), nil
}

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if errResult := h.requireConnect(); errResult != nil {
		return errResult, nil
	}

	start := req.GetInt("start", 0)
	limit := req.GetInt("limit", 20)

	workouts, err := h.gc.ListWorkouts(ctx, start, limit)
	if err != nil {
		h.log.Error("mcp list_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if errResult := h.requireConnect(); errResult != nil {
		return errResult, nil
	}

	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	raw, err := h.gc.GetWorkout(ctx, int64(id))
	if err != nil {
		h.log.Error("mcp get_workout", "id", id, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

func (h *handlers) downloadWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if errResult := h.requireConnect(); errResult != nil {
		return errResult, nil
	}

	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	data, err := h.gc.DownloadWorkout(ctx, int64(id))
	if err != nil {
		h.log.Error("mcp download_workout", "id", id, "error", err)
		return mcp.NewToolResultError("download failed: " + err.Error()), nil
	}

	f, err := os.CreateTemp("", fmt.Sprintf("workout-%d-*.fit", id))
	if err != nil {
		return mcp.NewToolResultError("writing FIT file: " + err.Error()), nil
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return mcp.NewToolResultError("writing FIT file: " + err.Error()), nil
	}
	if err := f.Close(); err != nil {
		return mcp.NewToolResultError("writing FIT file: " + err.Error()), nil
	}

	h.log.Info("workout downloaded", "id", id, "path", f.Name(), "bytes", len(data))
	result, err := mcp.NewToolResultJSON(map[string]any{"path": f.Name(), "bytes": len(data)})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listActivities(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if errResult := h.requireConnect(); errResult != nil {
		return errResult, nil
	}

	start := req.GetInt("start", 0)
	limit := req.GetInt("limit", 5)

	activities, err := h.gc.ListActivities(ctx, start, limit)
	if err != nil {
		h.log.Error("mcp list_activities", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(activities)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
