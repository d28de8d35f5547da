package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/observability"
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
	metrics     *observability.Metrics
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, metrics *observability.Metrics) *UserHandler {
	return &UserHandler{userService: userService, metrics: metrics}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateUserRequest is accepted as a URL-encoded form or as JSON.
type CreateUserRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
}

// ExerciseResponse is one entry of a user's log.
type ExerciseResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// UserResponse is a user together with the full log.
type UserResponse struct {
	ID       string             `json:"_id"`
	Username string             `json:"username"`
	Log      []ExerciseResponse `json:"log"`
}

// MapExercisesToResponse converts log entries, never returning nil.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = ExerciseResponse{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.Date,
		}
	}
	return responses
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{Log: []ExerciseResponse{}}
	}
	return UserResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Log:      MapExercisesToResponse(user.Log),
	}
}

// --- Handler Methods ---

// CreateUser godoc
// @Summary Create a user
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Success 200 {object} UserResponse
// @Failure 400 {string} string "This user already exists."
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithText(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.metrics.UserCreated()
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ListUsers godoc
// @Summary List all users
// @Produce json
// @Success 200 {array} UserResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	c.JSON(http.StatusOK, responses)
}
