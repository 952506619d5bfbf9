package snippets

import (
	"bytes"
	"log"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/snippetpad/internal/platform/errors"
	"github.com/louisbranch/snippetpad/internal/platform/httpx"
	"github.com/louisbranch/snippetpad/internal/services/snippets/snippet"
	"github.com/louisbranch/snippetpad/internal/services/snippets/templates"
)

const tracerName = "github.com/louisbranch/snippetpad/internal/services/snippets"

type pageHandler struct {
	title     string
	assetBase string
	tracer    trace.Tracer
	logger    *log.Logger
}

func newPageHandler(cfg Config) *pageHandler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &pageHandler{
		title:     cfg.PageTitle,
		assetBase: cfg.AssetBaseURL,
		tracer:    otel.Tracer(tracerName),
		logger:    logger,
	}
}

// ServeHTTP resolves the html, css, and js query values and renders the page.
// Decoding never fails the request; unusable values fall back to defaults.
func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(httpx.RequestContext(r), "snippets.render_page")
	defer span.End()

	query := r.URL.Query()
	supplied := snippet.Supplied(query)
	names := make([]string, 0, len(supplied))
	for _, kind := range supplied {
		names = append(names, kind.Param())
	}
	span.SetAttributes(attribute.StringSlice("snippets.supplied", names))

	page := templates.Page(templates.PageView{
		Title:     h.title,
		AssetBase: h.assetBase,
		Snippets:  snippet.ResolveQuery(query),
	})

	var buf bytes.Buffer
	if err := page.Render(ctx, &buf); err != nil {
		renderErr := apperrors.Wrap(apperrors.CodeRenderFailed, "render snippet page", err)
		span.RecordError(renderErr)
		span.SetStatus(codes.Error, renderErr.Error())
		h.logger.Printf("render page failed request_id=%s err=%v", r.Header.Get(httpx.RequestIDHeader), renderErr)
		httpx.WriteError(w, renderErr)
		return
	}
	if err := httpx.WriteHTML(w, http.StatusOK, buf.String()); err != nil {
		h.logger.Printf("write page failed request_id=%s err=%v", r.Header.Get(httpx.RequestIDHeader), err)
	}
}
