package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"gestao_manutencao/internal/domain/entities"
	"gestao_manutencao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkOrdersTableName = "work_orders"
	workOrdersAssetIDIndex     = "asset_id-index"
)

type workOrderItem struct {
	ID       string `dynamodbav:"id"`
	Status   string `dynamodbav:"status"`
	Priority string `dynamodbav:"priority"`

	AssetID         string `dynamodbav:"asset_id"`
	ClientID        string `dynamodbav:"client_id,omitempty"`
	CreatedByUserID string `dynamodbav:"created_by_user_id,omitempty"`
	ResponsibleID   string `dynamodbav:"responsible_id,omitempty"`

	CreationDate  string `dynamodbav:"creation_date"`
	ScheduledDate string `dynamodbav:"scheduled_date,omitempty"`
	StartDate     string `dynamodbav:"start_date,omitempty"`
	EndDate       string `dynamodbav:"end_date,omitempty"`

	Title               string `dynamodbav:"title"`
	Description         string `dynamodbav:"description,omitempty"`
	InternalObservation string `dynamodbav:"internal_observation,omitempty"`
	RootCause           string `dynamodbav:"root_cause,omitempty"`
	RecommendedAction   string `dynamodbav:"recommended_action,omitempty"`

	// Nested documents stored as JSON blobs.
	Checklist string `dynamodbav:"checklist,omitempty"`
	Parts     string `dynamodbav:"parts,omitempty"`

	MediaObrigatoria bool   `dynamodbav:"media_obrigatoria"`
	FotoAntes        string `dynamodbav:"foto_antes,omitempty"`
	FotoDepois       string `dynamodbav:"foto_depois,omitempty"`

	AssinaturaTecnicoURL  string `dynamodbav:"assinatura_tecnico_url,omitempty"`
	DataAssinaturaTecnico string `dynamodbav:"data_assinatura_tecnico,omitempty"`
	AssinaturaClienteURL  string `dynamodbav:"assinatura_cliente_url,omitempty"`
	DataAssinaturaCliente string `dynamodbav:"data_assinatura_cliente,omitempty"`

	Version   int    `dynamodbav:"version"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: asset_id-index (PK: asset_id)
//
// Every write after Create is conditional on the stored version, so two
// concurrent editors of the same order cannot silently overwrite each other.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	it, err := toWorkOrderItem(w)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it)
}

// Update replaces the full aggregate, conditional on the expected version.
// A stale version returns a zero-ID order so the use case can report the
// conflict without treating it as an infrastructure failure.
func (r *WorkOrderDynamoRepository) Update(ctx context.Context, w entities.WorkOrder, expectedVersion int) (entities.WorkOrder, error) {
	w.Version = expectedVersion + 1
	it, err := toWorkOrderItem(w)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expectedVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func (r *WorkOrderDynamoRepository) ListByAssetID(ctx context.Context, assetID string, createdSince time.Time) ([]entities.WorkOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workOrdersAssetIDIndex),
		KeyConditionExpression: aws.String("asset_id = :aid"),
		FilterExpression:       aws.String("creation_date >= :since"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid":   &types.AttributeValueMemberS{Value: assetID},
			":since": &types.AttributeValueMemberS{Value: createdSince.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		w, err := fromWorkOrderItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, nil
}

func toWorkOrderItem(w entities.WorkOrder) (workOrderItem, error) {
	it := workOrderItem{
		ID:                    w.ID,
		Status:                string(w.Status),
		Priority:              string(w.Priority),
		AssetID:               w.AssetID,
		ClientID:              w.ClientID,
		CreatedByUserID:       w.CreatedByUserID,
		ResponsibleID:         w.ResponsibleID,
		CreationDate:          w.CreationDate.UTC().Format(time.RFC3339Nano),
		ScheduledDate:         timeToString(w.ScheduledDate),
		StartDate:             timeToString(w.StartDate),
		EndDate:               timeToString(w.EndDate),
		Title:                 w.Title,
		Description:           w.Description,
		InternalObservation:   w.InternalObservation,
		RootCause:             w.RootCause,
		RecommendedAction:     w.RecommendedAction,
		MediaObrigatoria:      w.MediaObrigatoria,
		FotoAntes:             w.FotosAntesDepois.Antes,
		FotoDepois:            w.FotosAntesDepois.Depois,
		AssinaturaTecnicoURL:  w.AssinaturaTecnicoURL,
		DataAssinaturaTecnico: timeToString(w.DataAssinaturaTecnico),
		AssinaturaClienteURL:  w.AssinaturaClienteURL,
		DataAssinaturaCliente: timeToString(w.DataAssinaturaCliente),
		Version:               w.Version,
		UpdatedAt:             w.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	if w.Checklist != nil {
		b, err := json.Marshal(w.Checklist)
		if err != nil {
			return workOrderItem{}, err
		}
		it.Checklist = string(b)
	}
	if len(w.Parts) > 0 {
		b, err := json.Marshal(w.Parts)
		if err != nil {
			return workOrderItem{}, err
		}
		it.Parts = string(b)
	}
	return it, nil
}

func fromWorkOrderItem(it workOrderItem) (entities.WorkOrder, error) {
	creationDate, _ := time.Parse(time.RFC3339Nano, it.CreationDate)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	w := entities.WorkOrder{
		ID:                    it.ID,
		Status:                entities.WorkOrderStatus(it.Status),
		Priority:              entities.WorkOrderPriority(it.Priority),
		AssetID:               it.AssetID,
		ClientID:              it.ClientID,
		CreatedByUserID:       it.CreatedByUserID,
		ResponsibleID:         it.ResponsibleID,
		CreationDate:          creationDate,
		ScheduledDate:         stringToTime(it.ScheduledDate),
		StartDate:             stringToTime(it.StartDate),
		EndDate:               stringToTime(it.EndDate),
		Title:                 it.Title,
		Description:           it.Description,
		InternalObservation:   it.InternalObservation,
		RootCause:             it.RootCause,
		RecommendedAction:     it.RecommendedAction,
		MediaObrigatoria:      it.MediaObrigatoria,
		FotosAntesDepois:      entities.FotosAntesDepois{Antes: it.FotoAntes, Depois: it.FotoDepois},
		AssinaturaTecnicoURL:  it.AssinaturaTecnicoURL,
		DataAssinaturaTecnico: stringToTime(it.DataAssinaturaTecnico),
		AssinaturaClienteURL:  it.AssinaturaClienteURL,
		DataAssinaturaCliente: stringToTime(it.DataAssinaturaCliente),
		Version:               it.Version,
		UpdatedAt:             updatedAt,
	}

	if it.Checklist != "" {
		var c entities.Checklist
		if err := json.Unmarshal([]byte(it.Checklist), &c); err != nil {
			return entities.WorkOrder{}, err
		}
		w.Checklist = &c
	}
	if it.Parts != "" {
		if err := json.Unmarshal([]byte(it.Parts), &w.Parts); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	return w, nil
}

func timeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
