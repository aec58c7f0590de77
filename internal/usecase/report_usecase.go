package usecase

import (
	"context"
	"fmt"
	"sort"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const proposalsSheet = "Propostas"

var proposalsHeader = []string{
	"ID", "Cliente", "Status", "Valor Mensal", "Implementação", "Desconto", "Valor Final", "Criada em",
}

// IReportUseCase builds spreadsheet exports. Totals are the snapshots
// stored on finalize, the same numbers the proposal list shows.
type IReportUseCase interface {
	ProposalsWorkbook(ctx context.Context) ([]byte, error)
}

type ReportUseCase struct {
	proposals interfaces.IProposalRepository
	clients   interfaces.IClientRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(proposals interfaces.IProposalRepository, clients interfaces.IClientRepository) *ReportUseCase {
	return &ReportUseCase{proposals: proposals, clients: clients}
}

func (u *ReportUseCase) ProposalsWorkbook(ctx context.Context) ([]byte, error) {
	proposals, err := u.proposals.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.DisplayName()
	}
	sort.SliceStable(proposals, func(a, b int) bool { return proposals[a].CreatedAt.After(proposals[b].CreatedAt) })

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", proposalsSheet); err != nil {
		return nil, err
	}
	if err := writeProposalRows(f, proposals, names); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeProposalRows(f *excelize.File, proposals []entities.Proposal, names map[string]string) error {
	for i, h := range proposalsHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(proposalsSheet, cell, h); err != nil {
			return err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(proposalsSheet, "A1", "H1", bold); err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	for i, p := range proposals {
		row := i + 2
		values := []any{
			p.ID,
			names[p.ClientID],
			string(p.Status),
			p.TotalMonthly,
			p.TotalSetup,
			p.DiscountValue,
			p.TotalMonthly + p.TotalSetup - p.DiscountValue,
			p.CreatedAt.UTC().Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(proposalsSheet, cell, v); err != nil {
				return err
			}
		}
		from, _ := excelize.CoordinatesToCellName(4, row)
		to, _ := excelize.CoordinatesToCellName(7, row)
		if err := f.SetCellStyle(proposalsSheet, from, to, money); err != nil {
			return err
		}
	}
	return f.SetColWidth(proposalsSheet, "A", "H", 18)
}
