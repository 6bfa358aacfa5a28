package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eonet/internal/apperr"
	"eonet/internal/dto"
	"eonet/internal/models"
	"eonet/internal/service"
)

type EventHandler struct {
	Service *service.EventService
	Logger  *zap.Logger
}

func (h *EventHandler) Register(r *gin.Engine) {
	group := r.Group("/api/events")
	group.GET("", h.list)
	group.GET("/count", h.count)
	group.GET("/filter", h.filter)
	group.GET("/all", h.listForms)
	group.GET("/categories/:category", h.listByCategory)
	group.GET("/status/:status", h.listByStatus)
	group.GET("/date/:date", h.listByDate)
	group.GET("/stats/categories/:category", h.countByCategory)
	group.GET("/stats/status/:status", h.countByStatus)
	group.GET("/stats/date/:start/:end", h.countByDateRange)
	group.GET("/:id", h.get)
	group.GET("/:id/edit", h.getForEdit)
	group.POST("", h.create)
	group.POST("/create", h.createFromForm)
	group.PUT("/:id", h.update)
	group.PUT("/:id/update", h.updateFromForm)
	group.DELETE("/:id", h.remove)
}

// @Summary List all events
// @Tags events
// @Success 200 {array} dto.EventDTO
// @Router /api/events [get]
func (h *EventHandler) list(c *gin.Context) {
	items, err := h.Service.GetAllEvents(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get an event by id
// @Tags events
// @Param id path int true "event id"
// @Success 200 {object} dto.EventDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id} [get]
func (h *EventHandler) get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	item, err := h.Service.GetEventByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary List events by category
// @Tags events
// @Param category path string true "category label"
// @Success 200 {array} dto.EventDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/events/categories/{category} [get]
func (h *EventHandler) listByCategory(c *gin.Context) {
	category, ok := h.pathCategory(c)
	if !ok {
		return
	}
	items, err := h.Service.GetEventsByCategory(c.Request.Context(), category)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary List events by status
// @Tags events
// @Param status path string true "open or closed"
// @Success 200 {array} dto.EventDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/events/status/{status} [get]
func (h *EventHandler) listByStatus(c *gin.Context) {
	status, ok := h.pathStatus(c)
	if !ok {
		return
	}
	items, err := h.Service.GetEventsByStatus(c.Request.Context(), status)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary List events on a date
// @Tags events
// @Param date path string true "date (2006-01-02)"
// @Success 200 {array} dto.EventDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/events/date/{date} [get]
func (h *EventHandler) listByDate(c *gin.Context) {
	raw := c.Param("date")
	date, err := models.ParseDate(raw)
	if err != nil {
		writeError(c, h.Logger, apperr.TypeMismatch("date", raw))
		return
	}
	items, err := h.Service.GetEventsByDate(c.Request.Context(), date)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Filter events by category, status and date range
// @Tags events
// @Param category query string false "category label"
// @Param status query string false "open or closed"
// @Param start query string false "range start (2006-01-02)"
// @Param end query string false "range end (2006-01-02)"
// @Success 200 {array} dto.EventDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/events/filter [get]
func (h *EventHandler) filter(c *gin.Context) {
	var f service.EventFilter
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		category, err := models.ParseCategory(raw)
		if err != nil {
			writeError(c, h.Logger, apperr.TypeMismatch("category", raw))
			return
		}
		f.Category = &category
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			writeError(c, h.Logger, apperr.TypeMismatch("status", raw))
			return
		}
		f.Status = &status
	}
	if raw := strings.TrimSpace(c.Query("start")); raw != "" {
		start, err := models.ParseDate(raw)
		if err != nil {
			writeError(c, h.Logger, apperr.TypeMismatch("start", raw))
			return
		}
		f.Start = &start
	}
	if raw := strings.TrimSpace(c.Query("end")); raw != "" {
		end, err := models.ParseDate(raw)
		if err != nil {
			writeError(c, h.Logger, apperr.TypeMismatch("end", raw))
			return
		}
		f.End = &end
	}
	items, err := h.Service.FilterEvents(c.Request.Context(), f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Count all events
// @Tags stats
// @Success 200 {integer} int64
// @Router /api/events/count [get]
func (h *EventHandler) count(c *gin.Context) {
	n, err := h.Service.CountEvents(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary Count events in a category
// @Tags stats
// @Param category path string true "category label"
// @Success 200 {integer} int64
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/events/stats/categories/{category} [get]
func (h *EventHandler) countByCategory(c *gin.Context) {
	category, ok := h.pathCategory(c)
	if !ok {
		return
	}
	n, err := h.Service.CountEventsByCategory(c.Request.Context(), category)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary Count events with a status
// @Tags stats
// @Param status path string true "open or closed"
// @Success 200 {integer} int64
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/events/stats/status/{status} [get]
func (h *EventHandler) countByStatus(c *gin.Context) {
	status, ok := h.pathStatus(c)
	if !ok {
		return
	}
	n, err := h.Service.CountEventsByStatus(c.Request.Context(), status)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary Count events in a date range
// @Tags stats
// @Param start path string true "range start (2006-01-02)"
// @Param end path string true "range end (2006-01-02)"
// @Success 200 {integer} int64
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/events/stats/date/{start}/{end} [get]
func (h *EventHandler) countByDateRange(c *gin.Context) {
	rawStart := c.Param("start")
	start, err := models.ParseDate(rawStart)
	if err != nil {
		writeError(c, h.Logger, apperr.TypeMismatch("start", rawStart))
		return
	}
	rawEnd := c.Param("end")
	end, err := models.ParseDate(rawEnd)
	if err != nil {
		writeError(c, h.Logger, apperr.TypeMismatch("end", rawEnd))
		return
	}
	n, err := h.Service.CountEventsByDateBetween(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary Create an event
// @Tags events
// @Param event body dto.EventDTO true "event data"
// @Success 200 {object} dto.EventDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/events [post]
func (h *EventHandler) create(c *gin.Context) {
	var d dto.EventDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		writeBindError(c, h.Logger, err)
		return
	}
	if err := d.ValidateRequired(); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	created, err := h.Service.CreateEvent(c.Request.Context(), &d)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// @Summary Update an event
// @Tags events
// @Param id path int true "event id"
// @Param event body dto.EventDTO true "new event data"
// @Success 200 {object} dto.EventDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id} [put]
func (h *EventHandler) update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var d dto.EventDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		writeBindError(c, h.Logger, err)
		return
	}
	if err := d.ValidateRequired(); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	updated, err := h.Service.UpdateEvent(c.Request.Context(), id, &d)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete an event
// @Tags events
// @Param id path int true "event id"
// @Success 200
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id} [delete]
func (h *EventHandler) remove(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteEvent(c.Request.Context(), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary List all events as form data
// @Tags forms
// @Success 200 {array} dto.EventFormDTO
// @Router /api/events/all [get]
func (h *EventHandler) listForms(c *gin.Context) {
	items, err := h.Service.GetAllEventsAsForm(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get an event for editing
// @Tags forms
// @Param id path int true "event id"
// @Success 200 {object} dto.EventFormDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id}/edit [get]
func (h *EventHandler) getForEdit(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	item, err := h.Service.GetEventForEdit(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Create an event from form data
// @Tags forms
// @Param event body dto.EventFormDTO true "form data"
// @Success 201 {object} dto.EventFormDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/events/create [post]
func (h *EventHandler) createFromForm(c *gin.Context) {
	var d dto.EventFormDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		writeBindError(c, h.Logger, err)
		return
	}
	if err := d.ValidateRequired(); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	created, err := h.Service.CreateEventFromForm(c.Request.Context(), &d)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update an event from form data
// @Tags forms
// @Param id path int true "event id"
// @Param event body dto.EventFormDTO true "form data"
// @Success 200 {object} dto.EventFormDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id}/update [put]
func (h *EventHandler) updateFromForm(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var d dto.EventFormDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		writeBindError(c, h.Logger, err)
		return
	}
	if err := d.ValidateRequired(); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	updated, err := h.Service.UpdateEventFromForm(c.Request.Context(), id, &d)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// --- path parameter coercion ---------------------------------------------
// Failures here are TYPE_MISMATCH: the value never reached validation.

func (h *EventHandler) pathID(c *gin.Context) (uint64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeError(c, h.Logger, apperr.TypeMismatch("id", raw))
		return 0, false
	}
	return id, true
}

func (h *EventHandler) pathCategory(c *gin.Context) (models.Category, bool) {
	raw := c.Param("category")
	category, err := models.ParseCategory(raw)
	if err != nil {
		writeError(c, h.Logger, apperr.TypeMismatch("category", raw))
		return "", false
	}
	return category, true
}

func (h *EventHandler) pathStatus(c *gin.Context) (models.Status, bool) {
	raw := c.Param("status")
	status, err := models.ParseStatus(raw)
	if err != nil {
		writeError(c, h.Logger, apperr.TypeMismatch("status", raw))
		return "", false
	}
	return status, true
}
