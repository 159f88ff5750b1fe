// Package testserver wires the full stack (SQLite, store, generator, MCP
// server) behind an in-memory client session for end-to-end tests.
package testserver

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
	"github.com/rpggio/proyek-akademik/internal/domain/project"
	"github.com/rpggio/proyek-akademik/internal/download"
	"github.com/rpggio/proyek-akademik/internal/generator"
	"github.com/rpggio/proyek-akademik/internal/mcp"
	"github.com/rpggio/proyek-akademik/internal/sqlite"
)

type TestServer struct {
	Session   *sdkmcp.ClientSession
	Store     *project.Store
	DB        *sqlite.DB
	ExportDir string
}

// New starts a server backed by a shared in-memory database named after the
// test, using the mock generator.
func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)

	gen, err := generator.New(generator.MockLLM{}, nil, 10*time.Second)
	require.NoError(t, err)

	exportDir := t.TempDir()
	downloader, err := download.NewDir(exportDir)
	require.NoError(t, err)

	store := project.NewStore(project.Config{
		Storage:    sqlite.NewSlotRepository(db),
		Generator:  gen,
		Prompter:   mcp.Prompter{},
		Downloader: downloader,
		Recorder:   activitySvc,
		Cooldown:   time.Minute,
	})
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))

	server := mcp.NewServer(mcp.Config{Store: store, Activity: activitySvc})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
		_ = db.Close()
	})

	return &TestServer{
		Session:   session,
		Store:     store,
		DB:        db,
		ExportDir: exportDir,
	}
}

// CallTool invokes a tool and returns its JSON text payload and error flag.
func (ts *TestServer) CallTool(t *testing.T, name string, args map[string]any) (string, bool) {
	t.Helper()

	if args == nil {
		args = map[string]any{}
	}
	res, err := ts.Session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text, res.IsError
}
