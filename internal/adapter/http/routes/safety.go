package routes

import (
	"sst_compliance/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEvaluations = "/evaluations"
	PathQuestions   = "/questions"
	PathWorks       = "/works"
)

func addSafetyRoutes(
	rg *gin.RouterGroup,
	evaluationHandler *handlers.EvaluationHandler,
	questionHandler *handlers.QuestionHandler,
	workHandler *handlers.WorkHandler,
) {
	evaluations := rg.Group(PathEvaluations)
	{
		evaluations.POST("", evaluationHandler.CreateEvaluation)
		evaluations.GET("/:id", evaluationHandler.GetEvaluation)
		evaluations.PUT("/:id/answers", evaluationHandler.ReplaceAnswers)
		evaluations.POST("/:id/complete", evaluationHandler.CompleteEvaluation)
		evaluations.DELETE("/:id", evaluationHandler.DeleteEvaluation)
	}

	questions := rg.Group(PathQuestions)
	{
		questions.POST("", questionHandler.CreateQuestion)
		questions.GET("", questionHandler.ListQuestions)
		questions.PATCH("/reorder", questionHandler.ReorderQuestions)
		questions.PUT("/:id", questionHandler.UpdateQuestion)
		questions.PATCH("/:id/deactivate", questionHandler.DeactivateQuestion)
	}

	works := rg.Group(PathWorks)
	{
		works.POST("", workHandler.CreateWork)
		works.GET("/:id", workHandler.GetWork)
	}
}
