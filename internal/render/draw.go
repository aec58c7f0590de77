package render

import "github.com/go-pdf/fpdf"

type rgb struct{ r, g, b int }

var (
	colorPurple      = rgb{59, 15, 111}
	colorPurpleLight = rgb{239, 230, 251}
	colorTextDark    = rgb{34, 34, 34}
	colorTextMuted   = rgb{110, 110, 110}
	colorLine        = rgb{217, 217, 217}
	colorAccent      = rgb{111, 43, 214}
	colorWhite       = rgb{255, 255, 255}
	colorTableHeader = rgb{250, 247, 254}
	colorDiscount    = rgb{200, 30, 30}
)

type opKind uint8

const (
	opRect opKind = iota
	opRoundedRect
	opCircle
	opLine
	opText
)

// op is one placed drawing instruction. Coordinates are mm from the top
// left corner. For opCircle (x, y) is the centre and w the radius; for
// opLine (x, y)-(w, h) are the two end points.
type op struct {
	kind   opKind
	x, y   float64
	w, h   float64
	radius float64
	style  string
	fill   rgb
	stroke rgb
	width  float64

	text  string
	font  font
	color rgb
	align string
}

func rect(x, y, w, h float64, fill rgb) op {
	return op{kind: opRect, x: x, y: y, w: w, h: h, style: "F", fill: fill}
}

func roundedRect(x, y, w, h, r float64, style string, fill, stroke rgb) op {
	return op{kind: opRoundedRect, x: x, y: y, w: w, h: h, radius: r, style: style, fill: fill, stroke: stroke, width: 0.3}
}

func circle(cx, cy, r float64, fill rgb) op {
	return op{kind: opCircle, x: cx, y: cy, w: r, style: "F", fill: fill}
}

func hline(x1, x2, y float64, c rgb) op {
	return op{kind: opLine, x: x1, y: y, w: x2, h: y, stroke: c, width: 0.3}
}

func text(x, y, w, h float64, s string, f font, c rgb, align string) op {
	return op{kind: opText, x: x, y: y, w: w, h: h, text: s, font: f, color: c, align: align}
}

// paint draws every page of l into pdf. tr converts UTF-8 to the core
// font encoding.
func paint(pdf *fpdf.Fpdf, tr func(string) string, l Layout) {
	for _, page := range l.Pages {
		pdf.AddPage()
		for _, o := range page.ops {
			switch o.kind {
			case opRect:
				pdf.SetFillColor(o.fill.r, o.fill.g, o.fill.b)
				pdf.Rect(o.x, o.y, o.w, o.h, o.style)
			case opRoundedRect:
				pdf.SetFillColor(o.fill.r, o.fill.g, o.fill.b)
				pdf.SetDrawColor(o.stroke.r, o.stroke.g, o.stroke.b)
				pdf.SetLineWidth(o.width)
				pdf.RoundedRect(o.x, o.y, o.w, o.h, o.radius, "1234", o.style)
			case opCircle:
				pdf.SetFillColor(o.fill.r, o.fill.g, o.fill.b)
				pdf.Circle(o.x, o.y, o.w, o.style)
			case opLine:
				pdf.SetDrawColor(o.stroke.r, o.stroke.g, o.stroke.b)
				pdf.SetLineWidth(o.width)
				pdf.Line(o.x, o.y, o.w, o.h)
			case opText:
				pdf.SetFont(fontFamily, o.font.style, o.font.size)
				pdf.SetTextColor(o.color.r, o.color.g, o.color.b)
				pdf.SetXY(o.x, o.y)
				pdf.CellFormat(o.w, o.h, tr(o.text), "", 0, o.align, false, 0, "")
			}
		}
	}
}
