package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"propostas_api/internal/domain/lifecycle"
	"propostas_api/internal/infrastructure/metrics"
	"propostas_api/internal/render"
	"propostas_api/internal/usecase/interfaces"
)

var (
	ErrDocumentGeneration = errors.New("could not generate document")
	ErrInvalidTheme       = errors.New("invalid document theme")
)

// ExportedDocument is a rendered proposal ready to be downloaded.
type ExportedDocument struct {
	Filename string
	Content  []byte
	Pages    int
}

type IDocumentUseCase interface {
	Export(ctx context.Context, proposalID string, theme string) (ExportedDocument, error)
}

type DocumentUseCase struct {
	loader       viewLoader
	renderer     interfaces.IDocumentRenderer
	defaultTheme render.Theme
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	proposals interfaces.IProposalRepository,
	items interfaces.IProposalItemRepository,
	catalog interfaces.ICatalogRepository,
	clients interfaces.IClientRepository,
	renderer interfaces.IDocumentRenderer,
	defaultTheme render.Theme,
) *DocumentUseCase {
	return &DocumentUseCase{
		loader:       viewLoader{proposals: proposals, items: items, catalog: catalog, clients: clients},
		renderer:     renderer,
		defaultTheme: defaultTheme,
	}
}

// Export renders a saved proposal that has a client. Drafts fail with
// lifecycle.ErrExportRequiresSave and proposals without a client (or whose
// client no longer exists) with lifecycle.ErrExportRequiresClient.
func (u *DocumentUseCase) Export(ctx context.Context, proposalID string, theme string) (ExportedDocument, error) {
	th := u.defaultTheme
	if theme != "" {
		parsed, err := render.ParseTheme(theme)
		if err != nil {
			return ExportedDocument{}, ErrInvalidTheme
		}
		th = parsed
	}

	view, err := u.loader.load(ctx, proposalID)
	if err != nil {
		return ExportedDocument{}, err
	}
	if err := lifecycle.CanExport(view.Proposal); err != nil {
		return ExportedDocument{}, err
	}
	if view.Client == nil {
		return ExportedDocument{}, lifecycle.ErrExportRequiresClient
	}

	start := time.Now()
	doc, err := u.renderer.Render(render.Input{Proposal: view.Proposal, Client: *view.Client, Items: view.Items}, th)
	metrics.RenderDuration.Observe(time.Since(start).Seconds())
	metrics.DocumentsRendered.WithLabelValues(string(th), metrics.Result(err)).Inc()
	if err != nil {
		slog.Error("[document][usecase] render failed", "proposal_id", view.ID, "theme", th, "error", err)
		return ExportedDocument{}, fmt.Errorf("%w: %v", ErrDocumentGeneration, err)
	}

	slog.Info("[document][usecase] document rendered", "proposal_id", view.ID, "theme", th, "pages", doc.Pages, "bytes", len(doc.Content))
	return ExportedDocument{
		Filename: render.Filename(*view.Client),
		Content:  doc.Content,
		Pages:    doc.Pages,
	}, nil
}
