package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

type font struct {
	style string
	size  float64
}

var (
	fontBody      = font{size: 10}
	fontBodyBold  = font{style: "B", size: 10}
	fontSmall     = font{size: 9}
	fontPill      = font{style: "B", size: 9.5}
	fontSection   = font{style: "B", size: 12}
	fontTitle     = font{style: "B", size: 18}
	fontHighlight = font{style: "B", size: 10.5}
)

// measurer reports text widths in mm with the same core font metrics the
// painter uses. Text is kept as UTF-8 and translated to cp1252 only for
// fpdf.
type measurer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newMeasurer(pdf *fpdf.Fpdf) *measurer {
	return &measurer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (m *measurer) width(s string, f font) float64 {
	m.pdf.SetFont(fontFamily, f.style, f.size)
	return m.pdf.GetStringWidth(m.tr(s))
}

// wrap breaks s into lines no wider than width. Explicit newlines start a
// new line and words longer than width are split.
func (m *measurer) wrap(s string, f font, width float64) []string {
	var out []string
	for _, para := range strings.Split(strings.TrimSpace(s), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, w := range words {
			for _, piece := range m.split(w, f, width) {
				candidate := piece
				if line != "" {
					candidate = line + " " + piece
				}
				if line != "" && m.width(candidate, f) > width {
					out = append(out, line)
					line = piece
					continue
				}
				line = candidate
			}
		}
		out = append(out, line)
	}
	return out
}

func (m *measurer) split(word string, f font, width float64) []string {
	if m.width(word, f) <= width {
		return []string{word}
	}
	var parts []string
	var cur []rune
	for _, r := range word {
		if len(cur) > 0 && m.width(string(append(cur, r)), f) > width {
			parts = append(parts, string(cur))
			cur = cur[:0]
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		parts = append(parts, string(cur))
	}
	return parts
}

// fit shortens s with an ellipsis until it fits width.
func (m *measurer) fit(s string, f font, width float64) string {
	if m.width(s, f) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + "..."
		if m.width(candidate, f) <= width {
			return candidate
		}
	}
	return ""
}

var monthsPTBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// issueDate formats t as "02 de janeiro de 2026".
func issueDate(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return fmt.Sprintf("%02d de %s de %d", t.Day(), monthsPTBR[t.Month()-1], t.Year())
}
