package routes

import (
	"log"
	"strconv"

	_ "sst_compliance/docs" // This will be auto-generated
	"sst_compliance/internal/adapter/http/handlers"
	repository2 "sst_compliance/internal/adapter/persistence/repository"
	"sst_compliance/internal/infrastructure/database"
	"sst_compliance/internal/infrastructure/reference"
	"sst_compliance/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	evaluationRepo := repository2.NewEvaluationDynamoRepository(ddb)
	questionRepo := repository2.NewQuestionDynamoRepository(ddb)
	workRepo := repository2.NewWorkDynamoRepository(ddb)
	penaltyTable := reference.NewPenaltyTable()

	evaluationUseCase := usecase.NewEvaluationUseCase(evaluationRepo, questionRepo, penaltyTable, workRepo)
	questionUseCase := usecase.NewQuestionUseCase(questionRepo)
	workUseCase := usecase.NewWorkUseCase(workRepo)

	evaluationHandler := handlers.NewEvaluationHandler(evaluationUseCase)
	questionHandler := handlers.NewQuestionHandler(questionUseCase)
	workHandler := handlers.NewWorkHandler(workUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSafetyRoutes(v1, evaluationHandler, questionHandler, workHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
