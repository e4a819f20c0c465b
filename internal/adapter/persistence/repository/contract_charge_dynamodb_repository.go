package repository

import (
	"context"
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
	defaultChargesTableName = "contract_charges"
	chargesContractIDIndex  = "contract_id-index"
)

type contractChargeItem struct {
	ID                string `dynamodbav:"id"`
	ContractID        string `dynamodbav:"contract_id"`
	Amount            string `dynamodbav:"amount"`
	Date              string `dynamodbav:"date"`
	Status            string `dynamodbav:"status"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderResponse  string `dynamodbav:"provider_response,omitempty"`
}

// ContractChargeDynamoRepository persists ContractCharge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)

type ContractChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractChargeRepository = (*ContractChargeDynamoRepository)(nil)

func NewContractChargeDynamoRepository(ddb *dynamodb.Client) *ContractChargeDynamoRepository {
	return &ContractChargeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACT_CHARGES_TABLE", defaultChargesTableName),
	}
}

func (r *ContractChargeDynamoRepository) Create(ctx context.Context, c entities.ContractCharge) (entities.ContractCharge, error) {
	it := toContractChargeItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ContractCharge{}, err
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
		return entities.ContractCharge{}, err
	}
	return c, nil
}

func (r *ContractChargeDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.ContractCharge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesContractIDIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ContractCharge, 0, len(out.Items))
	for _, raw := range out.Items {
		var it contractChargeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromContractChargeItem(it))
	}
	return items, nil
}

func toContractChargeItem(c entities.ContractCharge) contractChargeItem {
	return contractChargeItem{
		ID:                c.ID,
		ContractID:        c.ContractID,
		Amount:            strconv.FormatFloat(c.Amount, 'f', -1, 64),
		Date:              c.Date.UTC().Format(time.RFC3339Nano),
		Status:            string(c.Status),
		ProviderPaymentID: c.ProviderPaymentID,
		ProviderResponse:  string(c.ProviderResponse),
	}
}

func fromContractChargeItem(it contractChargeItem) entities.ContractCharge {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.ContractCharge{
		ID:                it.ID,
		ContractID:        it.ContractID,
		Amount:            amount,
		Date:              dt,
		Status:            entities.ChargeStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderResponse:  []byte(it.ProviderResponse),
	}
}
