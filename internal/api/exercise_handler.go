package api

import (
	"alcyxob/exercise-tracker/internal/observability"
	"alcyxob/exercise-tracker/internal/service"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	metrics         *observability.Metrics
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, metrics *observability.Metrics) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, metrics: metrics}
}

// AddExerciseRequest is accepted as a URL-encoded form or as JSON.
// Date is optional and expected as YYYY-MM-DD.
type AddExerciseRequest struct {
	Description string  `form:"description" json:"description" binding:"required"`
	Duration    Minutes `form:"duration" json:"duration" binding:"required,gt=0"`
	Date        string  `form:"date" json:"date"`
}

// Minutes is an exercise duration. In JSON it may be a number or a
// numeric string ("30"), matching what form bodies already allow.
type Minutes int

// UnmarshalJSON implements json.Unmarshaler.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("duration %q is not an integer", s)
		}
		*m = Minutes(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = Minutes(n)
	return nil
}

// AddExerciseResponse echoes the owner and the stored exercise, not the log.
type AddExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// LogQueryRequest carries the optional filters of a log read.
type LogQueryRequest struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit *int   `form:"limit" binding:"omitempty,min=0"`
}

// LogResponse is a user with a filtered log; Count is always len(Log).
type LogResponse struct {
	ID       string             `json:"_id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []ExerciseResponse `json:"log"`
}

// AddExercise godoc
// @Summary Log an exercise for a user
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param _id path string true "User ID"
// @Success 200 {object} AddExerciseResponse
// @Failure 400 {string} string "Validation or store error"
// @Failure 404 {string} string "User not found."
// @Router /api/users/{_id}/exercises [post]
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithText(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.exerciseService.AddExercise(c.Request.Context(), userID, req.Description, int(req.Duration), req.Date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.metrics.ExerciseLogged()
	c.JSON(http.StatusOK, AddExerciseResponse{
		ID:          entry.UserID.Hex(),
		Username:    entry.Username,
		Date:        entry.Exercise.Date,
		Duration:    entry.Exercise.Duration,
		Description: entry.Exercise.Description,
	})
}

// GetLog godoc
// @Summary Read a user's exercise log
// @Produce json
// @Param _id path string true "User ID"
// @Param from query string false "Lower date bound (YYYY-MM-DD), inclusive"
// @Param to query string false "Upper date bound (YYYY-MM-DD), inclusive"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} LogResponse
// @Failure 400 {string} string "Invalid query"
// @Failure 404 {string} string "User not found."
// @Router /api/users/{_id}/logs [get]
func (h *ExerciseHandler) GetLog(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req LogQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithText(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	// "limit=" means no limit, not zero.
	if c.Query("limit") == "" {
		req.Limit = nil
	}

	user, err := h.exerciseService.GetLog(c.Request.Context(), userID, service.LogQuery{
		From:  req.From,
		To:    req.To,
		Limit: req.Limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	entries := MapExercisesToResponse(user.Log)
	c.JSON(http.StatusOK, LogResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Count:    len(entries),
		Log:      entries,
	})
}
