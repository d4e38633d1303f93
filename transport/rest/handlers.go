package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
)

type moveRequest struct {
	Cell *int `json:"cell" binding:"required"`
}

type jumpRequest struct {
	Move *int `json:"move" binding:"required"`
}

func pingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (that *handlers) startSession(c *gin.Context) {
	session, err := that.sessions.StartSession(c.Request.Context())
	if err != nil {
		that.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newSessionResponse(session))
}

func (that *handlers) getSession(c *gin.Context) {
	session, err := that.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(session))
}

func (that *handlers) makeMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "malformed move request", err)
		return
	}

	session, err := that.sessions.MakeMove(c.Request.Context(), c.Param("id"), *req.Cell)
	if err != nil {
		that.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(session))
}

func (that *handlers) jumpTo(c *gin.Context) {
	var req jumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "malformed jump request", err)
		return
	}

	session, err := that.sessions.JumpTo(c.Request.Context(), c.Param("id"), *req.Move)
	if err != nil {
		that.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(session))
}

func (that *handlers) endSession(c *gin.Context) {
	if err := that.sessions.EndSession(c.Request.Context(), c.Param("id")); err != nil {
		that.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (that *handlers) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		writeError(c, http.StatusNotFound, "session not found", err)
	case errors.Is(err, apperror.ErrInvalidCell):
		writeError(c, http.StatusBadRequest, "invalid cell", err)
	case errors.Is(err, apperror.ErrInvalidMove):
		writeError(c, http.StatusBadRequest, "invalid move", err)
	default:
		that.logger.Error("request failed", "path", c.FullPath(), "error", err)
		writeError(c, http.StatusInternalServerError, "internal error", err)
	}
}

func writeError(c *gin.Context, status int, message string, err error) {
	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}

// requestLogger - gin middleware writing one slog line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
