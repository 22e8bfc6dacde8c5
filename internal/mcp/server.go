package mcp

import (
	"log/slog"

	"github.com/claude/fitforge/internal/generator"
	"github.com/claude/fitforge/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, synth *generator.Synthesizer, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("FitForge", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("FitForge workout planning server. Generate duration-fitted workout plans, browse the exercise catalog, and query saved templates, sessions, and exercise history."),
	)

	h := &handlers{db: db, synth: synth, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetTemplates, Handler: h.getTemplates},
		server.ServerTool{Tool: toolGetSessions, Handler: h.getSessions},
		server.ServerTool{Tool: toolGetExerciseHistory, Handler: h.getExerciseHistory},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db    *storage.DB
	synth *generator.Synthesizer
	log   *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"fitforge://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All built-in exercises grouped by muscle group, with compound/isolation category and default set counts"),
	mcp.WithMIMEType("application/json"),
)
