// Package render turns a proposal, its client and its items into the
// commercial proposal PDF.
//
// Rendering runs in two passes. Layout places every element on A4 pages
// by vertical budget, so the page count is known before anything is
// drawn; paint then replays the placed elements through fpdf. The output
// depends only on the input: totals are recomputed from the items and the
// PDF dates come from the proposal's creation time.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/domain/pricing"

	"github.com/go-pdf/fpdf"
)

var (
	ErrInvalidIssueDate = errors.New("proposal creation date is not a valid timestamp")
	ErrInvalidAmount    = errors.New("proposal has a malformed amount")
	ErrUnknownTheme     = errors.New("unknown document theme")
)

// Input is a fully joined proposal. The renderer never loads anything.
type Input struct {
	Proposal entities.Proposal
	Client   entities.Client
	Items    []entities.CartItem
}

type Document struct {
	Content []byte
	Pages   int
}

type Renderer struct {
	brand Brand
	loc   *time.Location
}

// NewRenderer builds a renderer for a brand. Dates are printed in loc,
// UTC when nil.
func NewRenderer(brand Brand, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{brand: brand.withDefaults(), loc: loc}
}

// Render produces the PDF for in using theme.
func (r *Renderer) Render(in Input, theme Theme) (Document, error) {
	spec, err := themeFor(theme)
	if err != nil {
		return Document{}, err
	}
	if err := validate(in); err != nil {
		return Document{}, err
	}

	pdf := newPDF()
	m := newMeasurer(pdf)
	layout := r.layout(m, in, spec)

	created := in.Proposal.CreatedAt.UTC()
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(r.brand.Title+" - "+in.Client.DisplayName(), true)
	pdf.SetAuthor(r.brand.Name, true)
	pdf.SetSubject(r.brand.Subtitle, true)
	pdf.SetCreator("propostas_api", false)

	paint(pdf, m.tr, layout)
	if err := pdf.Error(); err != nil {
		return Document{}, fmt.Errorf("failed to draw document: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Document{}, fmt.Errorf("failed to write document: %w", err)
	}
	return Document{Content: buf.Bytes(), Pages: pdf.PageCount()}, nil
}

// Layout returns the placed pages without producing a PDF.
func (r *Renderer) Layout(in Input, theme Theme) (Layout, error) {
	spec, err := themeFor(theme)
	if err != nil {
		return Layout{}, err
	}
	if err := validate(in); err != nil {
		return Layout{}, err
	}
	return r.layout(newMeasurer(newPDF()), in, spec), nil
}

// Filename is the download name: "Proposta - <company or name>.pdf".
func Filename(c entities.Client) string {
	name := c.DisplayName()
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)
	return "Proposta - " + name + ".pdf"
}

func newPDF() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}

func validate(in Input) error {
	if in.Proposal.CreatedAt.IsZero() || in.Proposal.CreatedAt.Year() < 1900 {
		return ErrInvalidIssueDate
	}
	if err := pricing.CheckLines(pricing.LinesFromItems(in.Items)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	d := in.Proposal.DiscountValue
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return ErrInvalidAmount
	}
	return nil
}
