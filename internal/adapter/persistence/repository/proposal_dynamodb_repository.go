package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type proposalItem struct {
	ID            string  `dynamodbav:"id"`
	ClientID      string  `dynamodbav:"client_id,omitempty"`
	UserID        string  `dynamodbav:"user_id,omitempty"`
	Status        string  `dynamodbav:"status"`
	TotalMonthly  float64 `dynamodbav:"total_monthly"`
	TotalSetup    float64 `dynamodbav:"total_setup"`
	DiscountValue float64 `dynamodbav:"discount_value"`
	Observations  string  `dynamodbav:"observations,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
	Version       int     `dynamodbav:"version"`
}

// ProposalDynamoRepository persists proposals.
//
// Table requirements:
//   - PK: id (string)
//
// Every update increments version. When the caller passes the version it
// read, the update is conditioned on it.
type ProposalDynamoRepository struct {
	table recordTable
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb DynamoAPI, tableName string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{table: recordTable{ddb: ddb, name: tableName, pk: "id"}}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	if p.Version == 0 {
		p.Version = 1
	}
	if err := r.table.insert(ctx, toProposalItem(p)); err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	var it proposalItem
	found, err := r.table.get(ctx, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	var items []proposalItem
	if err := r.table.scan(ctx, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Proposal, 0, len(items))
	for _, it := range items {
		out = append(out, fromProposalItem(it))
	}
	return out, nil
}

func (r *ProposalDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, stringKey("id", id))
}

func (r *ProposalDynamoRepository) Update(ctx context.Context, id string, patch entities.ProposalPatch, expectedVersion *int) (entities.Proposal, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := buildProposalUpdate(patch, now)

	cond := "attribute_exists(#id)"
	if expectedVersion != nil {
		cond += " AND #version = :expected_version"
		values[":expected_version"] = &types.AttributeValueMemberN{Value: strconv.Itoa(*expectedVersion)}
	}

	out, err := r.table.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.table.name),
		Key:                                 stringKey("id", id),
		ConditionExpression:                 aws.String(cond),
		UpdateExpression:                    aws.String(updateExpr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// The old item only comes back when the row exists, so the
			// version condition is what failed.
			if len(cfe.Item) > 0 && expectedVersion != nil {
				return entities.Proposal{}, interfaces.ErrVersionMismatch
			}
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

// buildProposalUpdate turns a patch into an update expression. An empty
// client id removes the attribute.
func buildProposalUpdate(patch entities.ProposalPatch, now string) (string, map[string]types.AttributeValue, map[string]string) {
	sets := []string{"#version = #version + :one", "#updated_at = :updated_at"}
	var removes []string
	values := map[string]types.AttributeValue{
		":one":        &types.AttributeValueMemberN{Value: "1"},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#version":    "version",
		"#updated_at": "updated_at",
	}

	setS := func(attr, v string) {
		sets = append(sets, "#"+attr+" = :"+attr)
		values[":"+attr] = &types.AttributeValueMemberS{Value: v}
		names["#"+attr] = attr
	}
	setN := func(attr string, v float64) {
		sets = append(sets, "#"+attr+" = :"+attr)
		values[":"+attr] = &types.AttributeValueMemberN{Value: floatToString(v)}
		names["#"+attr] = attr
	}

	if patch.ClientID != nil {
		if *patch.ClientID == "" {
			removes = append(removes, "#client_id")
			names["#client_id"] = "client_id"
		} else {
			setS("client_id", *patch.ClientID)
		}
	}
	if patch.Status != nil {
		setS("status", string(*patch.Status))
	}
	if patch.TotalMonthly != nil {
		setN("total_monthly", *patch.TotalMonthly)
	}
	if patch.TotalSetup != nil {
		setN("total_setup", *patch.TotalSetup)
	}
	if patch.DiscountValue != nil {
		setN("discount_value", *patch.DiscountValue)
	}
	if patch.Observations != nil {
		setS("observations", *patch.Observations)
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}
	return expr, values, names
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:            p.ID,
		ClientID:      p.ClientID,
		UserID:        p.UserID,
		Status:        string(p.Status),
		TotalMonthly:  p.TotalMonthly,
		TotalSetup:    p.TotalSetup,
		DiscountValue: p.DiscountValue,
		Observations:  p.Observations,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
		Version:       p.Version,
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		ID:            it.ID,
		ClientID:      it.ClientID,
		UserID:        it.UserID,
		Status:        entities.ProposalStatus(it.Status),
		TotalMonthly:  it.TotalMonthly,
		TotalSetup:    it.TotalSetup,
		DiscountValue: it.DiscountValue,
		Observations:  it.Observations,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		Version:       it.Version,
	}
}
