package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
// gc may be nil when no Garmin session has been imported yet; tools that
// need the Connect API then fail with a hint instead of at startup.
func New(gc Connect, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("FreeStride", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("FreeStride workout server for Garmin Connect. Plan structured workouts (steps, targets, repeats), push them to the watch, and browse stored workouts and recent activities. Use plan_workout to preview the compiled document before create_workout uploads it."),
	)

	h := &handlers{gc: gc, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolPlanWorkout, Handler: h.planWorkout},
		server.ServerTool{Tool: toolCreateWorkout, Handler: h.createWorkout},
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolDownloadWorkout, Handler: h.downloadWorkout},
		server.ServerTool{Tool: toolListActivities, Handler: h.listActivities},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRegistries, Handler: h.registries},
		server.ServerResource{Resource: resDefaultWorkout, Handler: h.defaultWorkout},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	gc  Connect
	log *slog.Logger
}

// --- Resource definitions ---

var resRegistries = mcp.NewResource(
	"freestride://registries",
	"Workout Registries",
	mcp.WithResourceDescription("All recognized step kinds, goal types, target types, and sports with their protocol codes"),
	mcp.WithMIMEType("application/json"),
)

var resDefaultWorkout = mcp.NewResource(
	"freestride://default_workout",
	"Default Workout",
	mcp.WithResourceDescription("The compiled document produced when no steps are given: warmup, interval, cooldown"),
	mcp.WithMIMEType("application/json"),
)
