package repository

import (
	"context"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type proposalItemRow struct {
	ProposalID    string `dynamodbav:"proposal_id"`
	ServicePlanID string `dynamodbav:"service_plan_id"`
	ID            string `dynamodbav:"item_id"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// ProposalItemDynamoRepository persists the plans of each proposal.
//
// Table requirements:
//   - PK: proposal_id (string)
//   - SK: service_plan_id (string)
//
// The key makes a plan unique per proposal and lets a proposal's items be
// read with one consistent query.
type ProposalItemDynamoRepository struct {
	table recordTable
}

var _ interfaces.IProposalItemRepository = (*ProposalItemDynamoRepository)(nil)

func NewProposalItemDynamoRepository(ddb DynamoAPI, tableName string) *ProposalItemDynamoRepository {
	return &ProposalItemDynamoRepository{table: recordTable{ddb: ddb, name: tableName, pk: "proposal_id"}}
}

func (r *ProposalItemDynamoRepository) Add(ctx context.Context, item entities.ProposalItem) (entities.ProposalItem, error) {
	row := proposalItemRow{
		ProposalID:    item.ProposalID,
		ServicePlanID: item.ServicePlanID,
		ID:            item.ID,
		CreatedAt:     formatTime(item.CreatedAt),
	}
	if err := r.table.insert(ctx, row); err != nil {
		return entities.ProposalItem{}, err
	}
	return item, nil
}

func (r *ProposalItemDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalItem, error) {
	var rows []proposalItemRow
	if err := r.table.queryPartition(ctx, proposalID, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.ProposalItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.ProposalItem{
			ID:            row.ID,
			ProposalID:    row.ProposalID,
			ServicePlanID: row.ServicePlanID,
			CreatedAt:     parseTime(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *ProposalItemDynamoRepository) DeleteByPlan(ctx context.Context, proposalID, planID string) (bool, error) {
	return r.table.delete(ctx, itemRowKey(proposalID, planID))
}

func (r *ProposalItemDynamoRepository) DeleteByProposalID(ctx context.Context, proposalID string) error {
	items, err := r.ListByProposalID(ctx, proposalID)
	if err != nil {
		return err
	}
	keys := make([]itemKey, 0, len(items))
	for _, it := range items {
		keys = append(keys, itemRowKey(it.ProposalID, it.ServicePlanID))
	}
	return r.table.deleteAll(ctx, keys)
}

func itemRowKey(proposalID, planID string) itemKey {
	return itemKey{
		"proposal_id":     &types.AttributeValueMemberS{Value: proposalID},
		"service_plan_id": &types.AttributeValueMemberS{Value: planID},
	}
}
