package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/fitforge/internal/plan"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	catalog := map[string]any{
		"muscle_groups": plan.MuscleGroups(),
		"exercises":     plan.CatalogSeeds(),
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
