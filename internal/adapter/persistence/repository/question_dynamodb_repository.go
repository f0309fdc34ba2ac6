package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"sst_compliance/internal/domain/entities"
	"sst_compliance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuestionsTableName = "questions"

type questionItem struct {
	ID           string `dynamodbav:"id"`
	Text         string `dynamodbav:"text"`
	Weight       int    `dynamodbav:"weight"`
	Type         string `dynamodbav:"type"`
	DisplayOrder int    `dynamodbav:"display_order"`
	Active       bool   `dynamodbav:"active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// QuestionDynamoRepository persists catalog questions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small (tens of rows), so type listings use a filtered Scan
// and sort in memory by display order.

type QuestionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuestionRepository = (*QuestionDynamoRepository)(nil)

func NewQuestionDynamoRepository(ddb *dynamodb.Client) *QuestionDynamoRepository {
	return &QuestionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUESTIONS_TABLE", defaultQuestionsTableName),
	}
}

func (r *QuestionDynamoRepository) Create(ctx context.Context, q entities.Question) (entities.Question, error) {
	it := toQuestionItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Question{}, err
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
		return entities.Question{}, err
	}
	return q, nil
}

func (r *QuestionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Question, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Question{}, err
	}
	if len(out.Item) == 0 {
		return entities.Question{}, nil
	}

	var it questionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Question{}, err
	}
	return fromQuestionItem(it), nil
}

func (r *QuestionDynamoRepository) Update(ctx context.Context, q entities.Question) (entities.Question, error) {
	return r.update(ctx, q.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #text = :text, #weight = :weight, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":text":       &types.AttributeValueMemberS{Value: q.Text},
			":weight":     &types.AttributeValueMemberN{Value: strconv.Itoa(q.Weight)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#text":       "text",
			"#weight":     "weight",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuestionDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Question, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #active = :active, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":active":     &types.AttributeValueMemberBOOL{Value: active},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#active":     "active",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuestionDynamoRepository) SetDisplayOrder(ctx context.Context, id string, order int) (entities.Question, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #display_order = :display_order, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":display_order": &types.AttributeValueMemberN{Value: strconv.Itoa(order)},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#display_order": "display_order",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuestionDynamoRepository) ListByType(ctx context.Context, t entities.EvaluationType) ([]entities.Question, error) {
	return r.scanByType(ctx, t, false)
}

func (r *QuestionDynamoRepository) ListActiveByType(ctx context.Context, t entities.EvaluationType) ([]entities.Question, error) {
	return r.scanByType(ctx, t, true)
}

func (r *QuestionDynamoRepository) scanByType(ctx context.Context, t entities.EvaluationType, activeOnly bool) ([]entities.Question, error) {
	filter := "#type = :type"
	names := map[string]string{"#type": "type"}
	vals := map[string]types.AttributeValue{
		":type": &types.AttributeValueMemberS{Value: string(t)},
	}
	if activeOnly {
		filter += " AND #active = :active"
		names["#active"] = "active"
		vals[":active"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	var questions []entities.Question
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: vals,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it questionItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			questions = append(questions, fromQuestionItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].DisplayOrder < questions[j].DisplayOrder
	})
	return questions, nil
}

func (r *QuestionDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Question, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Question{}, nil
		}
		return entities.Question{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Question{}, nil
	}
	var it questionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Question{}, err
	}
	return fromQuestionItem(it), nil
}

func toQuestionItem(q entities.Question) questionItem {
	return questionItem{
		ID:           q.ID,
		Text:         q.Text,
		Weight:       q.Weight,
		Type:         string(q.Type),
		DisplayOrder: q.DisplayOrder,
		Active:       q.Active,
		CreatedAt:    q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuestionItem(it questionItem) entities.Question {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Question{
		ID:           it.ID,
		Text:         it.Text,
		Weight:       it.Weight,
		Type:         entities.EvaluationType(it.Type),
		DisplayOrder: it.DisplayOrder,
		Active:       it.Active,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
