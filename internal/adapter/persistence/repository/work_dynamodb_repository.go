package repository

import (
	"context"
	"time"

	"sst_compliance/internal/domain/entities"
	"sst_compliance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorksTableName = "works"

type workItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Address   string `dynamodbav:"address,omitempty"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// WorkDynamoRepository persists Work entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type WorkDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkRepository = (*WorkDynamoRepository)(nil)

func NewWorkDynamoRepository(ddb *dynamodb.Client) *WorkDynamoRepository {
	return &WorkDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKS_TABLE", defaultWorksTableName),
	}
}

func (r *WorkDynamoRepository) Create(ctx context.Context, w entities.Work) (entities.Work, error) {
	it := workItem{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		Active:    w.Active,
		CreatedAt: w.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: w.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Work{}, err
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
		return entities.Work{}, err
	}
	return w, nil
}

func (r *WorkDynamoRepository) GetByID(ctx context.Context, id string) (entities.Work, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Work{}, err
	}
	if len(out.Item) == 0 {
		return entities.Work{}, nil
	}

	var it workItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Work{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Work{
		ID:        it.ID,
		Name:      it.Name,
		Address:   it.Address,
		Active:    it.Active,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
