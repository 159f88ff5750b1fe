package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `proyek-akademik holds one academic writing project (skripsi, tesis, disertasi) at a time.

Core concepts:
- Project document: title, authorInfo, outline, chapters, bibliography, appendices, statement/approval page data, preface and abstract. Chapter content is HTML.
- The document is replaced whole on every change. Read it with get_project, edit it locally, send it back with update_project.
- Every change is saved immediately; the saved copy is loaded on the next start.

Rules of engagement:
1) Orient: call get_project.
2) New project: create_project(author_info, title, academic_level). Generation is rate limited; if it returns COOLING_DOWN, wait and retry.
3) Destructive tools (import_project over an active project, reset_project) return confirmation_required first. Ask the user, then repeat the call with confirm=true.
4) Back up with export_project; restore with import_project.

Docs:
- proyek://docs/index
- proyek://docs/document-format
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "proyek://docs/index",
		Name:        "docs_index",
		Title:       "proyek-akademik docs index",
		Description: "Entry point: which tool to use when, and how confirmations work.",
		Content: `# proyek-akademik: Agent Docs Index

## Tools

- ` + "`get_project`" + `: the active document plus ` + "`creating`" + ` and ` + "`cooldown`" + ` flags.
- ` + "`create_project`" + `: generates a fresh skeleton. Fails with ` + "`COOLING_DOWN`" + ` while the guard is active and ` + "`GENERATION_FAILED`" + ` when the generator errors. The previous project is kept on failure.
- ` + "`update_project`" + `: replaces the document. Send the whole document.
- ` + "`import_project`" + `: restores an exported file. Requires title, outline, chapters and authorInfo.
- ` + "`export_project`" + `: pretty-printed JSON named ` + "`proyek-akademik-<slug>.json`" + `.
- ` + "`reset_project`" + `: clears the project and the saved copy.
- ` + "`get_recent_activity`" + `: what happened recently, newest first.

## Confirmations

Tools that would discard work answer with ` + "`confirmation_required`" + ` (the question to put to the user) and change nothing. Repeat the call with ` + "`confirm=true`" + ` once the user agrees.

## Notices

Responses may include ` + "`notices`" + `: short user-facing messages (success or failure). Relay them.

## Warnings

A ` + "`warning`" + ` means the change is active but could not be saved. It will be lost on restart unless saved again.
`,
	},
	{
		URI:         "proyek://docs/document-format",
		Name:        "docs_document_format",
		Title:       "Project document format",
		Description: "Field-by-field description of the project document.",
		Content: `# Project document format

| Field | Type | Notes |
|---|---|---|
| title | string | required |
| authorInfo | object | required; name, studentId, program, faculty, university, supervisor, year |
| outline | any | required on import |
| chapters | array | required on import; generated entries have id, title, content (HTML) |
| bibliography | array | defaults to [] |
| appendices | array | defaults to [] |
| statementPageData | object or null | |
| approvalData | object or null | |
| preface | HTML string | defaults to a placeholder paragraph |
| abstract | HTML string | defaults to a placeholder paragraph |

Nested shapes are not validated. Unknown fields are dropped.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
