package handler

import (
	"net/http"
	"strconv"
	"time"

	"ai-marketing-api/common"
	"ai-marketing-api/model"
	"ai-marketing-api/service"
)

type CalendarHandler struct {
	calendar *service.CalendarService
}

func NewCalendarHandler(calendar *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// monthYearQuery reads the month/year query parameters, defaulting to
// the current month.
func monthYearQuery(r *http.Request) (int, int, *common.AppError) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, common.NewAppError(http.StatusBadRequest, "month must be between 1 and 12", err)
		}
		month = m
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, common.NewAppError(http.StatusBadRequest, "year must be a number", err)
		}
		year = y
	}
	return month, year, nil
}

// List godoc
// @Summary      List calendar events for a month
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        month query int false "Month (1-12), defaults to current"
// @Param        year query int false "Year, defaults to current"
// @Success      200 {array} model.CalendarEvent
// @Router       /api/calendar [get]
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	month, year, appErr := monthYearQuery(r)
	if appErr != nil {
		return appErr
	}

	events, err := h.calendar.ListMonth(user.ID, month, year)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not list events", err)
	}
	writeJSON(w, http.StatusOK, events)
	return nil
}

// Create godoc
// @Summary      Create a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.CreateEventRequest true "Event payload"
// @Success      201 {object} model.CalendarEvent
// @Failure      400 {object} map[string]string
// @Router       /api/calendar [post]
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.CreateEventRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	event, err := h.calendar.Create(user.ID, &req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create event", err)
	}
	writeJSON(w, http.StatusCreated, event)
	return nil
}

// Update godoc
// @Summary      Update a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Event ID"
// @Param        request body model.UpdateEventRequest true "Fields to change"
// @Success      200 {object} model.CalendarEvent
// @Failure      404 {object} map[string]string
// @Router       /api/calendar/{id} [put]
func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	var req model.UpdateEventRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	event, err := h.calendar.Update(id, user.ID, &req)
	if err != nil {
		if err == service.ErrEventNotFound {
			return common.NotFound("Event not found")
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update event", err)
	}
	writeJSON(w, http.StatusOK, event)
	return nil
}

// Delete godoc
// @Summary      Delete a calendar event
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Event ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/calendar/{id} [delete]
func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	if err := h.calendar.Delete(id, user.ID); err != nil {
		if err == service.ErrEventNotFound {
			return common.NotFound("Event not found")
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete event", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Event deleted"})
	return nil
}

// Generate godoc
// @Summary      Generate a posting schedule for a month
// @Description  Replaces the month's events with a generated posting plan.
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.GenerateCalendarRequest true "Target month"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Router       /api/calendar/generate [post]
func (h *CalendarHandler) Generate(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.GenerateCalendarRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	events, month, year, err := h.calendar.GenerateMonth(user.ID, req.Month, req.Year)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not generate calendar", err)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"month":  month,
		"year":   year,
	})
	return nil
}
