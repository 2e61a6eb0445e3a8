package dashboard

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/repodeck/repodeck/internal/classify"
	"github.com/repodeck/repodeck/internal/projects"
)

type stubSnapshotter struct {
	pass  projects.Pass
	calls int
}

func (s *stubSnapshotter) Snapshot(_ context.Context) projects.Pass {
	s.calls++
	return s.pass
}

func fixturePass() projects.Pass {
	return projects.Pass{
		ID:        uuid.New(),
		StartedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Duration:  125 * time.Millisecond,
		Groups: []projects.GroupResult{
			{
				Name: "",
				Results: []projects.Result{
					{Project: projects.Project{Name: "demo", Path: "/srv/demo"}, Status: classify.StatusOkay},
				},
			},
			{
				Name: "work",
				Results: []projects.Result{
					{Project: projects.Project{Name: "api", Path: "/srv/api"}, Status: classify.StatusNotAGitRepo},
				},
			},
		},
	}
}

func newTestApp(t *testing.T, snapshotter Snapshotter) *fiber.App {
	t.Helper()

	app := fiber.New()
	newHandler(snapshotter, zaptest.NewLogger(t)).Register(app)

	return app
}

func TestHandler_RendersDashboard(t *testing.T) {
	stub := &stubSnapshotter{pass: fixturePass()}
	app := newTestApp(t, stub)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	page := string(body)
	assert.Contains(t, page, "demo")
	assert.Contains(t, page, "Okay")
	assert.Contains(t, page, "work", "group headings are rendered")
	assert.Contains(t, page, "Not a Git Repository")
	assert.Contains(t, page, stub.pass.ID.String())
}

func TestHandler_AnyPathAnyMethod(t *testing.T) {
	stub := &stubSnapshotter{pass: fixturePass()}
	app := newTestApp(t, stub)

	for _, req := range []struct {
		method string
		target string
	}{
		{"GET", "/some/deep/path"},
		{"POST", "/"},
		{"DELETE", "/anything?q=1"},
	} {
		resp, err := app.Test(httptest.NewRequest(req.method, req.target, nil))
		require.NoError(t, err)
		assert.Equalf(t, fiber.StatusOK, resp.StatusCode, "%s %s", req.method, req.target)
	}
}

func TestHandler_FreshPassPerRequest(t *testing.T) {
	stub := &stubSnapshotter{pass: fixturePass()}
	app := newTestApp(t, stub)

	for range 3 {
		_, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
	}

	assert.Equal(t, 3, stub.calls, "every request triggers its own classification pass")
}

func TestHandler_EscapesProjectNames(t *testing.T) {
	pass := fixturePass()
	pass.Groups[0].Results[0].Project.Name = "<script>alert(1)</script>"

	app := newTestApp(t, &stubSnapshotter{pass: pass})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.NotContains(t, string(body), "<script>alert(1)</script>")
	assert.True(t, strings.Contains(string(body), "&lt;script&gt;"))
}

func TestNewPage_MapsStatusesToStyling(t *testing.T) {
	page := newPage(fixturePass())

	require.Len(t, page.Groups, 2)
	assert.Equal(t, "okay", page.Groups[0].Cards[0].Class)
	assert.Equal(t, "fa-check-circle", page.Groups[0].Cards[0].Icon)
	assert.Equal(t, "not-a-repo", page.Groups[1].Cards[0].Class)
	assert.Equal(t, "125ms", page.Duration)
}
