package render

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"testing"
	"time"

	"propostas_api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issued = time.Date(2025, time.March, 7, 15, 0, 0, 0, time.UTC)

func sampleInput(discount float64) Input {
	return Input{
		Proposal: entities.Proposal{
			ID:            "prop-1",
			ClientID:      "client-1",
			Status:        entities.ProposalStatusSalva,
			DiscountValue: discount,
			CreatedAt:     issued,
		},
		Client: entities.Client{ID: "client-1", Name: "Maria Souza", Company: "Padaria Central"},
		Items: []entities.CartItem{
			{ServicePlan: entities.ServicePlan{ID: "plan-1", PlanName: "Mensal", MonthlyFee: 100, DeliveryTimeDays: 30}, ServiceName: "Gestão de Redes"},
			{ServicePlan: entities.ServicePlan{ID: "plan-2", PlanName: "Landing", SetupFee: 50, Deliverables: "Página de captura responsiva"}, ServiceName: "Site"},
		},
	}
}

func manyItems(n int) []entities.CartItem {
	items := make([]entities.CartItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, entities.CartItem{
			ServicePlan: entities.ServicePlan{
				ID:           fmt.Sprintf("plan-%d", i),
				PlanName:     fmt.Sprintf("Plano %d", i),
				MonthlyFee:   float64(100 + i),
				SetupFee:     float64(i % 3 * 50),
				Deliverables: "Planejamento mensal de conteúdo, relatórios de desempenho e reuniões de alinhamento com a equipe do cliente.",
			},
			ServiceName: fmt.Sprintf("Serviço %d", i),
		})
	}
	return items
}

func TestRenderer_LayoutTotals(t *testing.T) {
	r := NewRenderer(DefaultBrand(), nil)

	t.Run("without discount", func(t *testing.T) {
		l, err := r.Layout(sampleInput(0), ThemeClassic)
		require.NoError(t, err)
		texts := l.Texts()
		assert.Contains(t, texts, "R$ 150,00")
		assert.NotContains(t, texts, "Desconto:")
		assert.Equal(t, "R$ 150,00", valueAfter(t, texts, "Valor Final de Contratação"))
	})

	t.Run("with discount", func(t *testing.T) {
		l, err := r.Layout(sampleInput(20), ThemeClassic)
		require.NoError(t, err)
		texts := l.Texts()
		assert.Contains(t, texts, "Desconto:")
		assert.Contains(t, texts, "- R$ 20,00")
		assert.Equal(t, "R$ 130,00", valueAfter(t, texts, "Valor Final de Contratação"))
	})

	t.Run("stored snapshot totals are ignored", func(t *testing.T) {
		in := sampleInput(0)
		in.Proposal.TotalMonthly = 999
		in.Proposal.TotalSetup = 999
		l, err := r.Layout(in, ThemeClassic)
		require.NoError(t, err)
		assert.Equal(t, "R$ 150,00", valueAfter(t, l.Texts(), "Valor Final de Contratação"))
	})
}

func TestRenderer_Themes(t *testing.T) {
	r := NewRenderer(DefaultBrand(), nil)

	classic, err := r.Layout(sampleInput(0), ThemeClassic)
	require.NoError(t, err)
	texts := classic.Texts()
	assert.Equal(t, "—", valueAfter(t, texts, "R$ 100,00"), "zero setup fee renders as em-dash")
	assert.NotContains(t, texts, "R$ 0,00")
	assert.Contains(t, texts, "Gestão de Redes — Mensal")
	assert.NotContains(t, texts, "Prazo")

	detailed, err := r.Layout(sampleInput(0), ThemeDetailed)
	require.NoError(t, err)
	texts = detailed.Texts()
	assert.Contains(t, texts, "R$ 0,00")
	assert.NotContains(t, texts, "—")
	assert.Contains(t, texts, "Prazo")
	assert.Contains(t, texts, "30 dias")
	assert.Contains(t, texts, "A combinar")
}

func TestRenderer_SectionOrder(t *testing.T) {
	r := NewRenderer(DefaultBrand(), nil)
	in := sampleInput(0)
	in.Proposal.Observations = "Pagamento em até 10 dias."

	l, err := r.Layout(in, ThemeClassic)
	require.NoError(t, err)
	texts := l.Texts()

	order := []string{
		"Proposta Comercial",
		"Cliente:",
		"Padaria Central — Maria Souza",
		"07 de março de 2025",
		"1º Introdução",
		"2º Serviços e Benefícios",
		"Descrição não informada.",
		"Página de captura responsiva",
		"3º Investimento",
		"Valor Final de Contratação",
		"Observações",
		"Pagamento em até 10 dias.",
		"Página 1 / 1",
	}
	last := -1
	for _, s := range order {
		idx := slices.Index(texts, s)
		require.GreaterOrEqual(t, idx, 0, "missing %q", s)
		assert.Greater(t, idx, last, "%q out of order", s)
		last = idx
	}
}

func TestRenderer_Pagination(t *testing.T) {
	r := NewRenderer(DefaultBrand(), nil)
	in := sampleInput(0)
	in.Items = manyItems(40)

	l, err := r.Layout(in, ThemeClassic)
	require.NoError(t, err)
	require.Greater(t, len(l.Pages), 1)

	for i, p := range l.Pages {
		texts := p.Texts()
		assert.Equal(t, i+1, p.Number)
		assert.Equal(t, "Proposta Comercial", texts[0], "header repeats on page %d", i+1)
		assert.Equal(t, fmt.Sprintf("Página %d / %d", i+1, len(l.Pages)), texts[len(texts)-1])
		assert.Contains(t, texts, "Vieri Group • contato@vierigroup.com • (48) 99999-9999")
		for _, o := range p.ops {
			if o.kind == opText && o.y > headerTop+headerHeight && o.y < footerLineY {
				assert.LessOrEqual(t, o.y+o.h, contentBottom+0.001, "content overflows page %d: %q", i+1, o.text)
			}
		}
	}
	assert.Equal(t, 1, count(l.Texts(), "Cliente:"), "client box only on the first page")

	// each service is drawn once as a pill and once as a table row
	for i := 0; i < 40; i++ {
		assert.Equal(t, 2, count(l.Texts(), fmt.Sprintf("Serviço %d", i)))
		assert.Equal(t, 1, count(l.Texts(), fmt.Sprintf("Serviço %d — Plano %d", i, i)))
	}
}

func TestRenderer_RenderPDF(t *testing.T) {
	r := NewRenderer(DefaultBrand(), nil)

	for _, n := range []int{2, 40} {
		n := n
		t.Run(fmt.Sprintf("%d items", n), func(t *testing.T) {
			in := sampleInput(20)
			if n > 2 {
				in.Items = manyItems(n)
			}
			doc, err := r.Render(in, ThemeClassic)
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))

			m := regexp.MustCompile(`/Count (\d+)`).FindSubmatch(doc.Content)
			require.NotNil(t, m)
			declared, _ := strconv.Atoi(string(m[1]))
			pages := len(regexp.MustCompile(`/Type /Page\b`).FindAll(doc.Content, -1))
			assert.Equal(t, doc.Pages, declared)
			assert.Equal(t, doc.Pages, pages)

			l, err := r.Layout(in, ThemeClassic)
			require.NoError(t, err)
			assert.Equal(t, len(l.Pages), doc.Pages)
		})
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	r := NewRenderer(DefaultBrand(), nil)
	in := sampleInput(20)
	in.Items = manyItems(12)

	first, err := r.Render(in, ThemeDetailed)
	require.NoError(t, err)
	second, err := r.Render(in, ThemeDetailed)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first.Content, second.Content))
}

func TestRenderer_Errors(t *testing.T) {
	r := NewRenderer(DefaultBrand(), nil)

	t.Run("zero created at", func(t *testing.T) {
		in := sampleInput(0)
		in.Proposal.CreatedAt = time.Time{}
		_, err := r.Render(in, ThemeClassic)
		assert.ErrorIs(t, err, ErrInvalidIssueDate)
	})

	t.Run("nan fee", func(t *testing.T) {
		in := sampleInput(0)
		in.Items[0].MonthlyFee = math.NaN()
		_, err := r.Render(in, ThemeClassic)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("infinite discount", func(t *testing.T) {
		in := sampleInput(math.Inf(1))
		_, err := r.Layout(in, ThemeClassic)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown theme", func(t *testing.T) {
		_, err := r.Render(sampleInput(0), Theme("neon"))
		assert.ErrorIs(t, err, ErrUnknownTheme)
	})
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("")
	require.NoError(t, err)
	assert.Equal(t, ThemeClassic, th)
	th, err = ParseTheme(" Detailed ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDetailed, th)
	_, err = ParseTheme("neon")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Proposta - Padaria Central.pdf", Filename(entities.Client{Name: "Maria", Company: "Padaria Central"}))
	assert.Equal(t, "Proposta - Maria.pdf", Filename(entities.Client{Name: "Maria"}))
	assert.Equal(t, "Proposta - A-B.pdf", Filename(entities.Client{Name: "A/B"}))
}

func TestIssueDate(t *testing.T) {
	assert.Equal(t, "07 de março de 2025", issueDate(issued, time.UTC))
	late := time.Date(2025, time.December, 31, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "31 de dezembro de 2025", issueDate(late, time.UTC))
	assert.Equal(t, "31 de dezembro de 2025", issueDate(late, time.FixedZone("BRT", -3*3600)))
}

func TestMeasurer_Wrap(t *testing.T) {
	m := newMeasurer(newPDF())
	lines := m.wrap("um texto bem longo que precisa quebrar em mais de uma linha para caber", fontBody, 40)
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, m.width(l, fontBody), 40.0)
	}
	assert.Equal(t, []string{"a", "", "b"}, m.wrap("a\n\nb", fontBody, 40))
	assert.True(t, len(m.fit("Padaria Central de Florianópolis e Região", fontBody, 20)) > 0)
}

func valueAfter(t *testing.T, texts []string, label string) string {
	t.Helper()
	idx := slices.Index(texts, label)
	require.GreaterOrEqual(t, idx, 0, "missing %q", label)
	require.Less(t, idx+1, len(texts))
	return texts[idx+1]
}

func count(texts []string, s string) int {
	n := 0
	for _, v := range texts {
		if v == s {
			n++
		}
	}
	return n
}
