package repository

import (
	"context"
	"encoding/json"

	"gestao_manutencao/internal/domain/entities"
	"gestao_manutencao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultChecklistTemplatesTableName = "checklist_templates"

type checklistTemplateItem struct {
	ID      string `dynamodbav:"id"`
	Segment string `dynamodbav:"segment,omitempty"`
	Title   string `dynamodbav:"title"`
	Groups  string `dynamodbav:"groups"`
}

// ChecklistTemplateDynamoRepository reads ChecklistTemplate definitions from
// DynamoDB. Templates are authored elsewhere; this service only binds them.
//
// Table requirements:
//   - PK: id (string)

type ChecklistTemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChecklistTemplateRepository = (*ChecklistTemplateDynamoRepository)(nil)

func NewChecklistTemplateDynamoRepository(ddb *dynamodb.Client) *ChecklistTemplateDynamoRepository {
	return &ChecklistTemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKLIST_TEMPLATES_TABLE", defaultChecklistTemplatesTableName),
	}
}

func (r *ChecklistTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChecklistTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.ChecklistTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChecklistTemplate{}, nil
	}

	var it checklistTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChecklistTemplate{}, err
	}

	t := entities.ChecklistTemplate{
		ID:      it.ID,
		Segment: it.Segment,
		Title:   it.Title,
	}
	if it.Groups != "" {
		if err := json.Unmarshal([]byte(it.Groups), &t.Groups); err != nil {
			return entities.ChecklistTemplate{}, err
		}
	}
	return t, nil
}
