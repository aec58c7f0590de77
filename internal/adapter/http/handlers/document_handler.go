package handlers

import (
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"propostas_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// DownloadDocument godoc
// @Summary  Download the proposal PDF
// @Tags     documents
// @Produce  application/pdf
// @Param    id    path  string true  "proposal id"
// @Param    theme query string false "classic or detailed"
// @Success  200 {file} binary
// @Failure  409 {object} pkg.HTTPError
// @Router   /proposals/{id}/document [get]
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	id := c.Param("id")
	theme := c.Query("theme")

	slog.Info("[document][handler] export start", "proposal_id", id, "theme", theme)
	doc, err := h.usecase.Export(c.Request.Context(), id, theme)
	if err != nil {
		slog.Warn("[document][handler] export failed", "proposal_id", id, "error", err)
		writeError(c, mapProposalError(err))
		return
	}

	slog.Info("[document][handler] export success", "proposal_id", id, "pages", doc.Pages, "bytes", len(doc.Content))
	c.Header("Content-Disposition", attachment(doc.Filename))
	c.Header("X-Document-Pages", strconv.Itoa(doc.Pages))
	c.Data(http.StatusOK, pdfContentType, doc.Content)
}

// attachment builds a Content-Disposition value. Non-ASCII names are sent
// in the RFC 2231 filename* form.
func attachment(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}
