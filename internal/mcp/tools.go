package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools adds every project tool to the server.
func registerTools(server *sdkmcp.Server, h *Handler) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get the active academic project document and the creating/cooldown flags",
	}, toolFunc(h.GetProject))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Generate a new project skeleton (outline, chapters) from author info, title and academic level. Replaces the active project. Rate limited by a cooldown.",
	}, toolFunc(h.CreateProject))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Replace the active project with the supplied document. Documents are replaced whole, never patched.",
	}, toolFunc(h.UpdateProject))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_project",
		Description: "Import a project from exported JSON. Overwriting an active project requires confirm=true.",
	}, toolFunc(h.ImportProject))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_project",
		Description: "Export the active project as pretty-printed JSON and save it to the export directory",
	}, toolFunc(h.ExportProject))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "reset_project",
		Description: "Delete the active project and its saved copy. Requires confirm=true.",
	}, toolFunc(h.ResetProject))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "List recent project activity (created, imported, exported, reset, failed generations), newest first",
	}, toolFunc(h.GetRecentActivity))
}

// toolFunc adapts a Handler method to the SDK signature. Results and errors
// are both returned as JSON text content; no structured output schema is
// advertised.
func toolFunc[In, Out any](fn func(context.Context, In) (Out, error)) sdkmcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, args In) (*sdkmcp.CallToolResult, any, error) {
		out, err := fn(ctx, args)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(out)
	}
}

func jsonResult(v any) (*sdkmcp.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding result: %w", err)
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}

func errorResult(err error) *sdkmcp.CallToolResult {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = MapError(err)
	}
	data, merr := json.Marshal(apiErr)
	if merr != nil {
		data = []byte(apiErr.Error())
	}
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}
}
