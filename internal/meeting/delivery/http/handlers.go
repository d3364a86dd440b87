package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meetbot/internal/meeting"
	"meetbot/pkg/response"
)

const icsContentType = "text/calendar; charset=utf-8"

// Assistant godoc
// @Summary     Run a free-text request
// @Description Classifies the text as schedule, cancel or list and runs it.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Free-text request"
// @Success     200 {object} meeting.OutcomeView
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No matching meeting"
// @Failure     409 {object} response.Resp "Conflict or ambiguous cancel"
// @Failure     422 {object} response.Resp "Request not understood"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant [POST]
func (h *handler) Assistant(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Handle(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.renderOutcome(c, output)
}

// Schedule godoc
// @Summary     Schedule a meeting
// @Description Parses date, time range and title from text and books the slot when it is free.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Scheduling request"
// @Success     200 {object} meeting.OutcomeView
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict, data carries available slots"
// @Failure     422 {object} response.Resp "Request not understood"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.renderOutcome(c, output)
}

// Cancel godoc
// @Summary     Cancel a meeting
// @Description Cancels by id ("cancel meeting 5") or by title and optional date.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Cancellation request"
// @Success     200 {object} meeting.OutcomeView
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No matching meeting"
// @Failure     409 {object} response.Resp "Several meetings match, data carries candidates"
// @Failure     422 {object} response.Resp "Request not understood"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Cancel(ctx, meeting.CancelInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.Cancel: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.renderOutcome(c, output)
}

// List godoc
// @Summary     List meetings
// @Description Lists meetings of one date or of all dates when neither date nor q is set.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       date query string false "YYYY-MM-DD or an expression like tomorrow"
// @Param       q    query string false "Free text such as 'meetings next friday'"
// @Success     200 {object} meeting.OutcomeView
// @Failure     422 {object} response.Resp "Date not understood"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.renderOutcome(c, output)
}

// Detail godoc
// @Summary     Get meeting detail
// @Description Returns a single meeting by its id.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       id path int true "Meeting ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(meeting.NewMeetingView(output)))
}

// FreeSlots godoc
// @Summary     Free slots of a date
// @Description Lists the gaps between meetings inside working hours.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       date query string true "YYYY-MM-DD or an expression like tomorrow"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings/slots [GET]
func (h *handler) FreeSlots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.FreeSlots(ctx, req.Date)
	if err != nil {
		h.l.Errorf(ctx, "uc.FreeSlots: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSlotsResp(output))
}

// Export godoc
// @Summary     Export meetings as iCalendar
// @Description Renders the selected meetings as a text/calendar document.
// @Tags        Meetings
// @Produce     text/calendar
// @Param       date query string false "YYYY-MM-DD or an expression like tomorrow"
// @Param       q    query string false "Free text date selection"
// @Success     200 {string} string "iCalendar document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No meetings"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings/export.ics [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="meetings.ics"`)
	c.Data(http.StatusOK, icsContentType, body)
}

// renderOutcome writes the outcome view with the status its kind maps to.
// Non-success outcomes still carry the view as data.
func (h *handler) renderOutcome(c *gin.Context, out meeting.Outcome) {
	view := meeting.NewOutcomeView(out)

	switch out.Kind {
	case meeting.OutcomeScheduled, meeting.OutcomeCancelled, meeting.OutcomeListed:
		response.OK(c, view)
	case meeting.OutcomeConflict:
		response.ErrorWithData(c, http.StatusConflict, "time slot conflicts with an existing meeting", view)
	case meeting.OutcomeAmbiguous:
		response.ErrorWithData(c, http.StatusConflict, "several meetings match, be more specific", view)
	case meeting.OutcomeNotFound:
		response.ErrorWithData(c, http.StatusNotFound, "no matching meeting", view)
	default:
		response.ErrorWithData(c, http.StatusUnprocessableEntity, view.Reason, view)
	}
}
