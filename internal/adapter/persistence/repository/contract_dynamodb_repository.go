package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"gestao_manutencao/internal/domain/entities"
	"gestao_manutencao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContractsTableName = "maintenance_contracts"

type maintenanceContractItem struct {
	ID              string   `dynamodbav:"id"`
	ClientID        string   `dynamodbav:"client_id"`
	MonthlyValue    string   `dynamodbav:"monthly_value"`
	ContractType    string   `dynamodbav:"contract_type"`
	CoveredAssetIDs []string `dynamodbav:"covered_asset_ids,omitempty"`
	StartDate       string   `dynamodbav:"start_date"`
	EndDate         string   `dynamodbav:"end_date,omitempty"`
	Plans           string   `dynamodbav:"plans,omitempty"`
}

// ContractDynamoRepository reads MaintenanceContract records from DynamoDB.
// Contract lifecycle (creation, renewal) is owned by the commercial system;
// here contracts are read models for rollup and billing.
//
// Table requirements:
//   - PK: id (string)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.MaintenanceContract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.MaintenanceContract{}, err
	}
	if len(out.Item) == 0 {
		return entities.MaintenanceContract{}, nil
	}

	var it maintenanceContractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaintenanceContract{}, err
	}
	return fromMaintenanceContractItem(it)
}

func fromMaintenanceContractItem(it maintenanceContractItem) (entities.MaintenanceContract, error) {
	monthlyValue, _ := strconv.ParseFloat(it.MonthlyValue, 64)
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)

	c := entities.MaintenanceContract{
		ID:              it.ID,
		ClientID:        it.ClientID,
		MonthlyValue:    monthlyValue,
		ContractType:    entities.ContractType(it.ContractType),
		CoveredAssetIDs: it.CoveredAssetIDs,
		StartDate:       startDate,
		EndDate:         stringToTime(it.EndDate),
	}
	if it.Plans != "" {
		if err := json.Unmarshal([]byte(it.Plans), &c.Plans); err != nil {
			return entities.MaintenanceContract{}, err
		}
	}
	return c, nil
}
