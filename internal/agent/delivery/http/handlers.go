package http

import (
	"github.com/gin-gonic/gin"

	"ai-life-planner/internal/middleware"
	"ai-life-planner/pkg/response"
)

// Respond godoc
// @Summary     Converse with the schedule agent
// @Description Routes a free-text message: scheduling requests become commitments, questions are answered with schedule context. The reply is a tagged union (creation_success | answer | conflict | error).
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body respondReq true "User message"
// @Success     200 {object} respondResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agent [POST]
func (h *handler) Respond(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRespondReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Respond(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Respond: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRespondResp(output))
}
