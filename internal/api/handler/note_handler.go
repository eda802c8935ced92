package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/safenotes/notes-system/internal/api/metrics"
	"github.com/safenotes/notes-system/internal/core/domain"
	"github.com/safenotes/notes-system/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// Create handles POST /notas.
//
// @Summary      Create a note owned by the caller
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      noteRequest  true  "Note title and content"
// @Success      200   {object}  noteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /notas [post]
func (h *NoteHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Create(c.Request().Context(), caller, req.Title, req.Content)
	metrics.NoteOperationsTotal.WithLabelValues("create", outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Get handles GET /notas/:id.
//
// @Summary      Get a note by id
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Note id"
// @Success      200  {object}  noteResponse
// @Failure      404  {object}  errorResponse
// @Router       /notas/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	id, err := noteID(c)
	if err != nil {
		return err
	}

	note, err := h.service.Get(c.Request().Context(), caller, id)
	metrics.NoteOperationsTotal.WithLabelValues("get", outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Update handles PUT /notas/:id.
//
// @Summary      Update a note's title and content
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Note id"
// @Param        body  body      noteRequest  true  "New title and content"
// @Success      200   {object}  noteResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /notas/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	id, err := noteID(c)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Update(c.Request().Context(), caller, id, req.Title, req.Content)
	metrics.NoteOperationsTotal.WithLabelValues("update", outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Delete handles DELETE /notas/:id.
//
// @Summary      Delete a note
// @Tags         notes
// @Security     BearerAuth
// @Param        id  path  int  true  "Note id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /notas/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	id, err := noteID(c)
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), caller, id)
	metrics.NoteOperationsTotal.WithLabelValues("delete", outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func noteID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid note id")
	}
	return id, nil
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		OwnerID:   n.OwnerID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt.UTC(),
	}
}

// outcome maps a service error onto the metric outcome label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrAccessDenied):
		return "denied"
	case errors.Is(err, domain.ErrNoteNotFound):
		return "not_found"
	default:
		return "error"
	}
}
