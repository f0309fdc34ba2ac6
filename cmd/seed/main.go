package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"sst_compliance/internal/adapter/persistence/repository"
	"sst_compliance/internal/domain/entities"
	"sst_compliance/internal/infrastructure/database"
	"sst_compliance/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	_ "github.com/joho/godotenv/autoload"
)

// Seeds a local DynamoDB with the tables the service needs, the default
// question catalog and a sample work. Intended for development only:
//
//	DYNAMODB_ENDPOINT=http://localhost:8000 go run ./cmd/seed

type seedQuestion struct {
	text   string
	weight int
	qtype  entities.EvaluationType
}

var defaultCatalog = []seedQuestion{
	// site checklist (construction)
	{"Workers use the required personal protective equipment (helmet, boots, gloves)", 2, entities.EvaluationTypeSite},
	{"Collective fall-protection is installed on slabs, shafts and open edges", 4, entities.EvaluationTypeSite},
	{"Scaffolding is assembled, anchored and inspected according to the project", 4, entities.EvaluationTypeSite},
	{"Electrical panels are grounded, signposted and protected against weather", 3, entities.EvaluationTypeSite},
	{"Excavations are shored or sloped and fenced off", 3, entities.EvaluationTypeSite},
	{"Fire extinguishers are present, charged and accessible", 2, entities.EvaluationTypeSite},
	{"Machines and hoists have valid inspection records and trained operators", 3, entities.EvaluationTypeSite},
	{"Walkways and accesses are unobstructed and signposted", 1, entities.EvaluationTypeSite},
	{"Safety training records are up to date for every worker on site", 2, entities.EvaluationTypeSite},
	{"First-aid kit is available and a trained first-aider is on site", 1, entities.EvaluationTypeSite},
	// lodging checklist
	{"Dormitories respect the minimum area and bed spacing per worker", 2, entities.EvaluationTypeLodging},
	{"Sanitary facilities are clean and proportional to the number of lodgers", 2, entities.EvaluationTypeLodging},
	{"Drinking water is available in the lodging", 3, entities.EvaluationTypeLodging},
	{"Electrical installations of the lodging are protected and conform", 3, entities.EvaluationTypeLodging},
	{"Emergency exits are marked and unobstructed", 4, entities.EvaluationTypeLodging},
}

func main() {
	endpoint := flag.String("endpoint", "", "DynamoDB endpoint override (defaults to DYNAMODB_ENDPOINT)")
	skipCatalog := flag.Bool("skip-catalog", false, "do not seed the default question catalog")
	flag.Parse()

	if *endpoint != "" {
		// flag wins over the environment
		if err := os.Setenv("DYNAMODB_ENDPOINT", *endpoint); err != nil {
			log.Fatalf("failed to set endpoint: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ddb := database.ConnectDynamoDB()

	for _, table := range []string{"works", "questions", "evaluations"} {
		if err := ensureTable(ctx, ddb, table); err != nil {
			log.Fatalf("failed to ensure table %s: %v", table, err)
		}
		log.Printf("[seed] table ready name=%s", table)
	}

	workRepo := repository.NewWorkDynamoRepository(ddb)
	workUseCase := usecase.NewWorkUseCase(workRepo)
	work, err := workUseCase.Create(ctx, "Residencial Vila Verde - Tower A", "Av. das Obras 1200")
	if err != nil {
		log.Fatalf("failed to seed sample work: %v", err)
	}
	log.Printf("[seed] sample work created work_id=%s", work.ID)

	if *skipCatalog {
		return
	}

	questionRepo := repository.NewQuestionDynamoRepository(ddb)
	questionUseCase := usecase.NewQuestionUseCase(questionRepo)
	for _, sq := range defaultCatalog {
		q, err := questionUseCase.Create(ctx, usecase.CreateQuestionCommand{
			Text:   sq.text,
			Weight: sq.weight,
			Type:   sq.qtype,
		})
		if err != nil {
			log.Fatalf("failed to seed question %q: %v", sq.text, err)
		}
		log.Printf("[seed] question created question_id=%s type=%s weight=%d order=%d", q.ID, q.Type, q.Weight, q.DisplayOrder)
	}
}

func ensureTable(ctx context.Context, ddb *dynamodb.Client, name string) error {
	_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var exists *types.ResourceInUseException
		if errors.As(err, &exists) {
			return nil
		}
		return err
	}

	waiter := dynamodb.NewTableExistsWaiter(ddb)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, time.Minute)
}
