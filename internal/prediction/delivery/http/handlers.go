package http

import (
	"net/http"

	"depression-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const exampleMessage = "This is an example route from model.py"

// Predict - Score one questionnaire submission
// @Summary Predict depression risk
// @Description Scores the answers with the loaded classifier and explains each answer. The body is not wrapped.
// @Tags Model
// @Accept json
// @Produce json
// @Param body body predictReq true "Questionnaire answers"
// @Success 200 {object} predictResp
// @Failure 400 {object} response.Resp
// @Failure 422 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /model/predict [post]
func (h *handler) Predict(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	answers, err := h.processPredictRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "prediction.delivery.http.Predict: processPredictRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Predict(ctx, answers)
	if err != nil {
		h.l.Errorf(ctx, "prediction.delivery.http.Predict: usecase Predict failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	// 3. Return response
	response.Raw(c, http.StatusOK, h.newPredictResp(output))
}

// Example - Static diagnostic route
// @Summary Model router example
// @Tags Model
// @Produce json
// @Success 200 {object} exampleResp
// @Router /model/example [get]
func (h *handler) Example(c *gin.Context) {
	response.Raw(c, http.StatusOK, exampleResp{Message: exampleMessage})
}

// Info - Describe the loaded classifier
// @Summary Model info
// @Description Returns the artifact name, version, classes and feature columns.
// @Tags Model
// @Produce json
// @Success 200 {object} response.Resp{data=modelInfoResp}
// @Failure 503 {object} response.Resp
// @Router /model/info [get]
func (h *handler) Info(c *gin.Context) {
	ctx := c.Request.Context()

	info, err := h.uc.ModelInfo(ctx)
	if err != nil {
		h.l.Warnf(ctx, "prediction.delivery.http.Info: usecase ModelInfo failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newModelInfoResp(info))
}
