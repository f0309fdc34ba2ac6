package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"sst_compliance/internal/domain/entities"
	"sst_compliance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEvaluationsTableName = "evaluations"

type answerItem struct {
	ID           string   `dynamodbav:"id"`
	QuestionID   string   `dynamodbav:"question_id"`
	Value        string   `dynamodbav:"value"`
	Observation  string   `dynamodbav:"observation,omitempty"`
	EvidenceURLs []string `dynamodbav:"evidence_urls,omitempty"`
}

type evaluationItem struct {
	ID             string       `dynamodbav:"id"`
	WorkID         string       `dynamodbav:"work_id"`
	EvaluatorID    string       `dynamodbav:"evaluator_id"`
	Type           string       `dynamodbav:"type"`
	Date           string       `dynamodbav:"date"`
	EmployeesCount int          `dynamodbav:"employees_count"`
	Status         string       `dynamodbav:"status"`
	TotalPenalty   string       `dynamodbav:"total_penalty,omitempty"`
	Notes          string       `dynamodbav:"notes,omitempty"`
	Answers        []answerItem `dynamodbav:"answers"`
	CreatedAt      string       `dynamodbav:"created_at"`
	UpdatedAt      string       `dynamodbav:"updated_at"`
}

// EvaluationDynamoRepository persists Evaluation aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Answers live inside the evaluation item, so replacing the answer set and
// the DRAFT -> COMPLETED transition are each a single conditional write:
// readers see either the old full set or the new full set, never a mix, and
// two racing completions cannot both flip the status.

type EvaluationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEvaluationRepository = (*EvaluationDynamoRepository)(nil)

func NewEvaluationDynamoRepository(ddb *dynamodb.Client) *EvaluationDynamoRepository {
	return &EvaluationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVALUATIONS_TABLE", defaultEvaluationsTableName),
	}
}

func (r *EvaluationDynamoRepository) Create(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error) {
	it := toEvaluationItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Evaluation{}, err
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
		return entities.Evaluation{}, err
	}
	return e, nil
}

func (r *EvaluationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Evaluation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Evaluation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Evaluation{}, nil
	}

	var it evaluationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Evaluation{}, err
	}
	return fromEvaluationItem(it), nil
}

func (r *EvaluationDynamoRepository) ReplaceAnswersIfDraft(ctx context.Context, id string, answers []entities.Answer) (entities.Evaluation, error) {
	items := make([]answerItem, 0, len(answers))
	for _, a := range answers {
		items = append(items, toAnswerItem(a))
	}
	answersAV, err := attributevalue.Marshal(items)
	if err != nil {
		return entities.Evaluation{}, err
	}

	return r.updateIfDraft(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #answers = :answers, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":answers":    answersAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#answers":    "answers",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EvaluationDynamoRepository) CompleteIfDraft(ctx context.Context, id string, totalPenalty float64) (entities.Evaluation, error) {
	return r.updateIfDraft(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :completed, #total_penalty = :total_penalty, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":completed":     &types.AttributeValueMemberS{Value: string(entities.EvaluationStatusCompleted)},
			":total_penalty": &types.AttributeValueMemberS{Value: floatToString(totalPenalty)},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":        "status",
			"#total_penalty": "total_penalty",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EvaluationDynamoRepository) DeleteIfDraft(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :draft"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":draft": &types.AttributeValueMemberS{Value: string(entities.EvaluationStatusDraft)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// updateIfDraft applies a build-supplied update expression guarded by the
// optimistic status check. A failed condition (missing item or a status that
// is no longer DRAFT) comes back as a zero value, matching GetByID.
func (r *EvaluationDynamoRepository) updateIfDraft(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Evaluation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	values[":draft"] = &types.AttributeValueMemberS{Value: string(entities.EvaluationStatusDraft)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :draft"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Evaluation{}, nil
		}
		return entities.Evaluation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Evaluation{}, nil
	}
	var it evaluationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Evaluation{}, err
	}
	return fromEvaluationItem(it), nil
}

func toAnswerItem(a entities.Answer) answerItem {
	return answerItem{
		ID:           a.ID,
		QuestionID:   a.QuestionID,
		Value:        string(a.Value),
		Observation:  a.Observation,
		EvidenceURLs: a.EvidenceURLs,
	}
}

func fromAnswerItem(it answerItem) entities.Answer {
	return entities.Answer{
		ID:           it.ID,
		QuestionID:   it.QuestionID,
		Value:        entities.AnswerValue(it.Value),
		Observation:  it.Observation,
		EvidenceURLs: it.EvidenceURLs,
	}
}

func toEvaluationItem(e entities.Evaluation) evaluationItem {
	answers := make([]answerItem, 0, len(e.Answers))
	for _, a := range e.Answers {
		answers = append(answers, toAnswerItem(a))
	}
	totalPenalty := ""
	if e.TotalPenalty != nil {
		totalPenalty = floatToString(*e.TotalPenalty)
	}
	return evaluationItem{
		ID:             e.ID,
		WorkID:         e.WorkID,
		EvaluatorID:    e.EvaluatorID,
		Type:           string(e.Type),
		Date:           e.Date.UTC().Format(time.RFC3339Nano),
		EmployeesCount: e.EmployeesCount,
		Status:         string(e.Status),
		TotalPenalty:   totalPenalty,
		Notes:          e.Notes,
		Answers:        answers,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEvaluationItem(it evaluationItem) entities.Evaluation {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var totalPenalty *float64
	if it.TotalPenalty != "" {
		if v, err := strconv.ParseFloat(it.TotalPenalty, 64); err == nil {
			totalPenalty = &v
		}
	}

	answers := make([]entities.Answer, 0, len(it.Answers))
	for _, a := range it.Answers {
		answers = append(answers, fromAnswerItem(a))
	}

	return entities.Evaluation{
		ID:             it.ID,
		WorkID:         it.WorkID,
		EvaluatorID:    it.EvaluatorID,
		Type:           entities.EvaluationType(it.Type),
		Date:           date,
		EmployeesCount: it.EmployeesCount,
		Status:         entities.EvaluationStatus(it.Status),
		TotalPenalty:   totalPenalty,
		Notes:          it.Notes,
		Answers:        answers,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
