package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/repodeck/repodeck/internal/projects"
)

// Snapshotter produces one fresh classification pass per call.
type Snapshotter interface {
	Snapshot(ctx context.Context) projects.Pass
}

type Handler struct {
	projects Snapshotter
	tmpl     *template.Template

	logger *zap.Logger
}

func NewHandler(projectsSvc *projects.Service, logger *zap.Logger) handler.Handler {
	return newHandler(projectsSvc, logger)
}

func newHandler(projectsSvc Snapshotter, logger *zap.Logger) *Handler {
	return &Handler{
		projects: projectsSvc,
		tmpl:     template.Must(template.New("dashboard").Parse(pageTemplate)),

		logger: logger,
	}
}

// Register implements handler.Handler. The dashboard answers any path and any
// method with the full rendered page.
func (h *Handler) Register(r fiber.Router) {
	r.All("/*", h.render)
}

func (h *Handler) render(c *fiber.Ctx) error {
	pass := h.projects.Snapshot(c.Context())

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, newPage(pass)); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	return c.Send(buf.Bytes())
}
