package handlers

import (
	"net/http"

	"propostas_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

const reportFilename = "propostas.xlsx"

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// ExportProposals godoc
// @Summary  Download every proposal as a spreadsheet
// @Tags     proposals
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success  200 {file} binary
// @Router   /proposals/export.xlsx [get]
func (h *ReportHandler) ExportProposals(c *gin.Context) {
	content, err := h.usecase.ProposalsWorkbook(c.Request.Context())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.Header("Content-Disposition", attachment(reportFilename))
	c.Data(http.StatusOK, xlsxContentType, content)
}
