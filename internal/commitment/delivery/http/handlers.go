package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-life-planner/internal/middleware"
	"ai-life-planner/pkg/response"
)

// Parse godoc
// @Summary     Parse a natural-language commitment
// @Description Extracts title, type, location and times from free text and scores the result.
// @Tags        Commitments
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commitments/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// CheckConflicts godoc
// @Summary     Check a time range for conflicts
// @Description Reports existing commitments overlapping the candidate range, with alternative slots.
// @Tags        Commitments
// @Accept      json
// @Produce     json
// @Param       body body conflictsReq true "Candidate time range"
// @Success     200 {object} conflictsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commitments/conflicts [POST]
func (h *handler) CheckConflicts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConflictsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CheckConflicts(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckConflicts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newConflictsResp(output))
}

// SuggestSlots godoc
// @Summary     Suggest free slots
// @Description Proposes free slots of the requested duration around the desired start time.
// @Tags        Commitments
// @Accept      json
// @Produce     json
// @Param       body body slotsReq true "Desired slot parameters"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commitments/slots [POST]
func (h *handler) SuggestSlots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SuggestSlots(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestSlots: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSlotsResp(output))
}

// Patterns godoc
// @Summary     Detected recurring commitments
// @Description Surfaces weekly recurrences detected in the user's commitment history.
// @Tags        Commitments
// @Produce     json
// @Success     200 {object} patternsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commitments/patterns [GET]
func (h *handler) Patterns(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Patterns(ctx, middleware.UserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Patterns: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPatternsResp(output))
}

// Create godoc
// @Summary     Create a commitment
// @Description Persists a commitment. Overlaps return 409 with conflicts and alternatives unless force is set.
// @Tags        Commitments
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Commitment data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - overlapping commitments"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commitments [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		if output.Conflicts != nil {
			response.ErrorWithData(c, h.mapError(err), h.newConflictsResp(*output.Conflicts))
			return
		}
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List commitments
// @Description Returns a paginated list of the user's commitments ordered by start time.
// @Tags        Commitments
// @Produce     json
// @Param       from   query string false "Window start (RFC 3339)"
// @Param       to     query string false "Window end (RFC 3339)"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commitments [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get commitment detail
// @Description Returns one commitment with its current priority and travel estimate.
// @Tags        Commitments
// @Produce     json
// @Param       id path string true "Commitment ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commitments/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, middleware.UserID(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a commitment
// @Description Updates an existing commitment. All fields are optional (partial update).
// @Tags        Commitments
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Commitment ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commitments/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a commitment
// @Description Permanently removes a commitment by ID.
// @Tags        Commitments
// @Produce     json
// @Param       id path string true "Commitment ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commitments/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, middleware.UserID(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ExportICS godoc
// @Summary     Export commitments as iCalendar
// @Description Renders all of the user's commitments as an .ics feed.
// @Tags        Commitments
// @Produce     text/calendar
// @Success     200 {string} string "iCalendar feed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commitments/export.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.ExportICS(ctx, middleware.UserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="commitments.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}
