package render

import (
	"fmt"
	"math"
	"strings"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/domain/pricing"
)

// A4 portrait geometry in mm.
const (
	pageWidth     = 210.0
	marginX       = 14.0
	contentWidth  = pageWidth - 2*marginX
	textWidth     = contentWidth - 2
	headerTop     = 7.0
	headerHeight  = 28.0
	contentTop    = headerTop + headerHeight + 6
	contentBottom = 278.0
	footerLineY   = 282.0
	footerTextY   = 284.0

	lineBody  = 4.6
	lineSmall = 4.2

	maxServiceLines = 4
)

// Layout is a document placed on pages but not yet drawn.
type Layout struct {
	Pages []Page
}

type Page struct {
	Number int
	ops    []op
}

// Texts returns the strings placed on the page in drawing order.
func (p Page) Texts() []string {
	var out []string
	for _, o := range p.ops {
		if o.kind == opText && o.text != "" {
			out = append(out, o.text)
		}
	}
	return out
}

func (l Layout) Texts() []string {
	var out []string
	for _, p := range l.Pages {
		out = append(out, p.Texts()...)
	}
	return out
}

// block is a unit of vertical flow. A block never splits across pages.
type block struct {
	height float64
	// keepWithNext moves the block to the next page together with its
	// successor when both do not fit.
	keepWithNext bool
	// spacer blocks are dropped at the top of a page.
	spacer bool
	// carry is drawn first when the block opens a new page.
	carry *block
	draw  func(y float64) []op
}

func spacer(h float64) block {
	return block{height: h, spacer: true}
}

func paginate(blocks []block) [][]op {
	pages := [][]op{nil}
	y := contentTop
	for i, b := range blocks {
		if b.spacer && y == contentTop {
			continue
		}
		need := b.height
		for j := i; blocks[j].keepWithNext && j+1 < len(blocks); j++ {
			need += blocks[j+1].height
		}
		if y+need > contentBottom && y > contentTop {
			pages = append(pages, nil)
			y = contentTop
			if b.spacer {
				continue
			}
			if b.carry != nil {
				pages[len(pages)-1] = append(pages[len(pages)-1], b.carry.draw(y)...)
				y += b.carry.height
			}
		}
		if b.draw != nil {
			pages[len(pages)-1] = append(pages[len(pages)-1], b.draw(y)...)
		}
		y += b.height
	}
	return pages
}

func (r *Renderer) layout(m *measurer, in Input, spec themeSpec) Layout {
	totals := pricing.Compute(pricing.LinesFromItems(in.Items), pricing.Amount(in.Proposal.DiscountValue))

	var blocks []block
	blocks = append(blocks, r.clientBox(m, in))
	blocks = append(blocks, sectionTitle("1º Introdução"))
	blocks = append(blocks, paragraph(m, r.brand.Intro, fontBody, colorTextMuted, lineBody)...)
	blocks = append(blocks, spacer(4))
	blocks = append(blocks, servicesSection(m, in.Items, spec)...)
	blocks = append(blocks, spacer(4))
	blocks = append(blocks, investmentSection(m, in.Items, spec, totals)...)
	blocks = append(blocks, observationsSection(m, in.Proposal.Observations)...)

	bodies := paginate(blocks)
	layout := Layout{Pages: make([]Page, 0, len(bodies))}
	for i, body := range bodies {
		ops := r.header(m)
		ops = append(ops, body...)
		ops = append(ops, r.footer(m, i+1, len(bodies))...)
		layout.Pages = append(layout.Pages, Page{Number: i + 1, ops: ops})
	}
	return layout
}

func (r *Renderer) header(m *measurer) []op {
	const radius = 9.9
	x, y, w, h := marginX, headerTop, contentWidth, headerHeight
	cx, cy := x+w-6-radius, y+h/2
	titleW := w - 12 - 2*radius - 6
	return []op{
		roundedRect(x, y, w, h, 2, "F", colorPurple, colorPurple),
		text(x+6, y+6.5, titleW, 8, m.fit(r.brand.Title, fontTitle, titleW-2), fontTitle, colorWhite, "LM"),
		text(x+6, y+15.5, titleW, 5, m.fit(r.brand.Subtitle, fontSmall, titleW-2), fontSmall, colorWhite, "LM"),
		circle(cx, cy, radius, colorAccent),
		text(cx-radius, cy-4, 2*radius, 8, m.fit(r.brand.Initials, fontTitle, 2*radius-2), fontTitle, colorWhite, "CM"),
	}
}

func (r *Renderer) footer(m *measurer, n, total int) []op {
	const labelW = 40.0
	contactW := contentWidth - labelW
	return []op{
		hline(marginX, marginX+contentWidth, footerLineY, colorLine),
		text(marginX, footerTextY, contactW, 5, m.fit(r.brand.footer(), fontSmall, contactW-2), fontSmall, colorTextMuted, "LM"),
		text(marginX+contactW, footerTextY, labelW, 5, fmt.Sprintf("Página %d / %d", n, total), fontSmall, colorTextMuted, "RM"),
	}
}

func (r *Renderer) clientBox(m *measurer, in Input) block {
	const boxH = 16.0
	half := contentWidth/2 - 4

	name := strings.TrimSpace(in.Client.Name)
	value := name
	if company := strings.TrimSpace(in.Client.Company); company != "" {
		value = company
		if name != "" {
			value = company + " " + emDash + " " + name
		}
	}
	value = m.fit(value, fontBody, half-2)
	date := issueDate(in.Proposal.CreatedAt, r.loc)
	right := marginX + contentWidth - 3 - half

	return block{height: boxH + 6, draw: func(y float64) []op {
		return []op{
			roundedRect(marginX, y, contentWidth, boxH, 1.5, "D", colorWhite, colorTextDark),
			text(marginX+3, y+2, half, 5, "Cliente:", fontBodyBold, colorTextDark, "LM"),
			text(marginX+3, y+8, half, 5, value, fontBody, colorTextMuted, "LM"),
			text(right, y+2, half, 5, "Data de Emissão:", fontBodyBold, colorTextDark, "RM"),
			text(right, y+8, half, 5, date, fontBody, colorTextMuted, "RM"),
		}
	}}
}

func sectionTitle(s string) block {
	return block{height: 9, keepWithNext: true, draw: func(y float64) []op {
		return []op{text(marginX, y, contentWidth, 7, s, fontSection, colorPurple, "LM")}
	}}
}

// paragraph emits one block per wrapped line so long text flows across pages.
func paragraph(m *measurer, s string, f font, c rgb, lineH float64) []block {
	var out []block
	for _, line := range m.wrap(s, f, textWidth) {
		line := line
		out = append(out, block{height: lineH, draw: func(y float64) []op {
			if line == "" {
				return nil
			}
			return []op{text(marginX, y, contentWidth, lineH, line, f, c, "LM")}
		}})
	}
	return out
}

func servicesSection(m *measurer, items []entities.CartItem, spec themeSpec) []block {
	blocks := []block{sectionTitle("2º Serviços e Benefícios")}
	if len(items) == 0 {
		return append(blocks, paragraph(m, "Nenhum serviço selecionado.", fontBody, colorTextMuted, lineBody)...)
	}
	if spec.pills {
		blocks = append(blocks, pillRows(m, items)...)
	}
	for _, it := range items {
		title := m.fit(itemTitle(it), fontBodyBold, textWidth)
		blocks = append(blocks, block{height: 5.5, keepWithNext: true, draw: func(y float64) []op {
			return []op{text(marginX, y, contentWidth, 5.5, title, fontBodyBold, colorTextDark, "LM")}
		}})
		blocks = append(blocks, paragraph(m, itemDescription(it), fontSmall, colorTextMuted, lineSmall)...)
		blocks = append(blocks, spacer(2))
	}
	return blocks
}

type pill struct {
	label string
	width float64
}

// pillRows lays the distinct service names out as rounded labels, as many
// per row as fit.
func pillRows(m *measurer, items []entities.CartItem) []block {
	const h, padX, minW, gap = 7.0, 3.5, 42.0, 3.0

	var rows [][]pill
	var cur []pill
	used := 0.0
	seen := map[string]bool{}
	for _, it := range items {
		name := strings.TrimSpace(it.ServiceName)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		label := m.fit(name, fontPill, contentWidth-2*padX)
		w := math.Max(minW, m.width(label, fontPill)+2*padX+2)
		if len(cur) > 0 && used+w > contentWidth {
			rows = append(rows, cur)
			cur, used = nil, 0
		}
		cur = append(cur, pill{label: label, width: w})
		used += w + gap
	}
	if len(cur) > 0 {
		rows = append(rows, cur)
	}

	blocks := make([]block, 0, len(rows)+1)
	for _, row := range rows {
		row := row
		blocks = append(blocks, block{height: h + gap, draw: func(y float64) []op {
			var ops []op
			x := marginX
			for _, p := range row {
				ops = append(ops,
					roundedRect(x, y, p.width, h, 3.5, "F", colorPurpleLight, colorPurpleLight),
					text(x, y, p.width, h, p.label, fontPill, colorPurple, "CM"),
				)
				x += p.width + gap
			}
			return ops
		}})
	}
	if len(blocks) > 0 {
		blocks = append(blocks, spacer(2))
	}
	return blocks
}

func investmentSection(m *measurer, items []entities.CartItem, spec themeSpec, totals pricing.Totals) []block {
	const headerH = 8.0

	header := &block{height: headerH, keepWithNext: true, draw: func(y float64) []op {
		ops := []op{
			rect(marginX, y, contentWidth, headerH, colorTableHeader),
			hline(marginX, marginX+contentWidth, y, colorLine),
			hline(marginX, marginX+contentWidth, y+headerH, colorLine),
		}
		x := marginX
		for _, col := range spec.columns {
			w := col.share * contentWidth
			ops = append(ops, text(x, y, w, headerH, col.title, fontBodyBold, colorTextDark, col.align))
			x += w
		}
		return ops
	}}

	blocks := []block{sectionTitle("3º Investimento"), *header}
	for _, it := range items {
		blocks = append(blocks, tableRow(m, it, spec, header))
	}
	return append(blocks, totalsBlock(totals))
}

func tableRow(m *measurer, it entities.CartItem, spec themeSpec, header *block) block {
	cells := make([][]string, len(spec.columns))
	lines := 1
	for i, col := range spec.columns {
		w := col.share*contentWidth - 2
		v := col.value(it)
		if i == 0 {
			wrapped := m.wrap(v, fontBody, w)
			if len(wrapped) > maxServiceLines {
				wrapped = wrapped[:maxServiceLines]
				wrapped[maxServiceLines-1] = m.fit(wrapped[maxServiceLines-1]+"...", fontBody, w)
			}
			cells[i] = wrapped
		} else {
			cells[i] = []string{m.fit(v, fontBody, w)}
		}
		lines = max(lines, len(cells[i]))
	}
	rowH := math.Max(8, float64(lines)*lineBody+3.4)

	return block{height: rowH, carry: header, draw: func(y float64) []op {
		var ops []op
		x := marginX
		for i, col := range spec.columns {
			w := col.share * contentWidth
			top := y + (rowH-float64(len(cells[i]))*lineBody)/2
			for j, line := range cells[i] {
				ops = append(ops, text(x, top+float64(j)*lineBody, w, lineBody, line, fontBody, colorTextDark, col.align))
			}
			x += w
		}
		return append(ops, hline(marginX, marginX+contentWidth, y+rowH, colorLine))
	}}
}

type totalsRow struct {
	label, value string
	labelColor   rgb
	valueColor   rgb
}

func totalsBlock(t pricing.Totals) block {
	const rowH, finalH = 6.0, 9.0
	boxW := contentWidth * 0.45
	x := marginX + contentWidth - boxW

	rows := []totalsRow{
		{label: "Valor Mensal:", value: pricing.FormatBRL(t.Monthly), labelColor: colorTextMuted, valueColor: colorTextDark},
		{label: "Implementação:", value: pricing.FormatBRL(t.Setup), labelColor: colorTextMuted, valueColor: colorTextDark},
	}
	if t.DiscountAmount > 0 {
		rows = append(rows, totalsRow{label: "Desconto:", value: "- " + pricing.FormatBRL(t.DiscountAmount), labelColor: colorDiscount, valueColor: colorDiscount})
	}
	final := pricing.FormatBRL(t.Final)
	height := 3 + float64(len(rows))*rowH + 2 + finalH + 4

	return block{height: height, draw: func(y float64) []op {
		var ops []op
		cy := y + 3
		for _, row := range rows {
			ops = append(ops,
				text(x, cy, boxW/2, rowH, row.label, fontBody, row.labelColor, "LM"),
				text(x+boxW/2, cy, boxW/2, rowH, row.value, fontBodyBold, row.valueColor, "RM"),
			)
			cy += rowH
		}
		cy += 2
		return append(ops,
			hline(x, x+boxW, cy, colorLine),
			rect(x, cy+0.5, boxW, finalH, colorPurpleLight),
			text(x, cy+0.5, boxW*0.68, finalH, "Valor Final de Contratação", fontHighlight, colorPurple, "LM"),
			text(x+boxW*0.6, cy+0.5, boxW*0.4, finalH, final, fontHighlight, colorPurple, "RM"),
		)
	}}
}

func observationsSection(m *measurer, observations string) []block {
	if strings.TrimSpace(observations) == "" {
		return nil
	}
	blocks := []block{
		spacer(2),
		{height: 6, keepWithNext: true, draw: func(y float64) []op {
			return []op{text(marginX, y, contentWidth, 6, "Observações", fontBodyBold, colorTextDark, "LM")}
		}},
	}
	return append(blocks, paragraph(m, observations, fontSmall, colorTextMuted, lineSmall)...)
}
