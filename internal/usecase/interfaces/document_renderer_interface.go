package interfaces

import "propostas_api/internal/render"

type IDocumentRenderer interface {
	Render(in render.Input, theme render.Theme) (render.Document, error)
}
