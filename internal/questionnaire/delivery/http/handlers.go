package http

import (
	"net/http"

	"depression-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List - List the questionnaire
// @Summary List questions
// @Description Returns the questionnaire as a JSON array, in display order. The body is not wrapped.
// @Tags Questionnaire
// @Produce json
// @Success 200 {array} model.Question
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /questions [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.uc.ListQuestions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "questionnaire.delivery.http.List: usecase ListQuestions failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Raw(c, http.StatusOK, h.newListResp(questions))
}
