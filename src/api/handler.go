package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"project/catalog"
	"project/models"
	"project/services"
	"project/utils"
)

// APIHandler holds the dependencies the HTTP handlers need.
type APIHandler struct {
	sessionService services.SessionService
	catalog        catalog.Catalog
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(sessionService services.SessionService, cat catalog.Catalog) *APIHandler {
	return &APIHandler{
		sessionService: sessionService,
		catalog:        cat,
	}
}

// userRequest is the body shared by the session mutation endpoints.
type userRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// answerRequest is the body of POST /api/assessment/answer.
type answerRequest struct {
	UserID     string   `json:"user_id" binding:"required"`
	ScenarioID string   `json:"scenario_id" binding:"required"`
	OptionIDs  []string `json:"option_ids" binding:"required"`
}

// statusFor maps the core's error taxonomy onto HTTP statuses: caller errors
// become 4xx, catalog/data errors 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, models.ErrSessionComplete):
		return http.StatusConflict
	case errors.Is(err, models.ErrNoActiveSession), errors.Is(err, models.ErrUnknownScenario):
		return http.StatusNotFound
	case models.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// InitHandler returns the bootstrap payload: catalog summary plus the
// caller's session state if one exists.
func (h *APIHandler) InitHandler(c *gin.Context) {
	userID := c.Query("userID")

	resp := models.InitResponse{
		UserID:  userID,
		Catalog: h.catalog.Summary(),
	}
	if userID != "" {
		session, err := h.sessionService.GetSession(userID)
		if err != nil {
			utils.SendJSONError(c, http.StatusInternalServerError, "Could not load session state.", err)
			return
		}
		resp.Session = session
		resp.Progress = h.sessionService.Progress(session)
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// StartHandler starts (or resumes) the caller's assessment session and
// returns the scenario awaiting a selection.
func (h *APIHandler) StartHandler(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	session, scenario, err := h.sessionService.Start(req.UserID)
	if err != nil {
		utils.SendJSONError(c, statusFor(err), err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"session":  session,
		"scenario": scenario,
		"progress": h.sessionService.Progress(session),
	}})
}

// SubmitAnswerHandler applies one answer and returns either the next
// scenario or, on completion, the full result.
func (h *APIHandler) SubmitAnswerHandler(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	outcome, err := h.sessionService.SubmitAnswer(req.UserID, req.ScenarioID, req.OptionIDs)
	if err != nil {
		utils.SendJSONError(c, statusFor(err), err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"session":   outcome.Session,
		"scenario":  outcome.NextScenario,
		"completed": outcome.Completed,
		"progress":  outcome.Progress,
		"result":    outcome.Result,
	}})
}

// PreviousHandler rewinds the last answer.
func (h *APIHandler) PreviousHandler(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	session, scenario, err := h.sessionService.GoToPrevious(req.UserID)
	if err != nil {
		utils.SendJSONError(c, statusFor(err), err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"session":  session,
		"scenario": scenario,
		"progress": h.sessionService.Progress(session),
	}})
}

// ResetHandler discards the caller's session state.
func (h *APIHandler) ResetHandler(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	if err := h.sessionService.Reset(req.UserID); err != nil {
		utils.SendJSONError(c, statusFor(err), err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"reset": true}})
}

// SessionHandler returns the caller's session state and current scenario.
func (h *APIHandler) SessionHandler(c *gin.Context) {
	userID := c.Param("userID")
	scenario, session, err := h.sessionService.CurrentScenario(userID)
	if err != nil {
		utils.SendJSONError(c, statusFor(err), err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"session":  session,
		"scenario": scenario,
		"progress": h.sessionService.Progress(session),
	}})
}

// SessionByKeyHandler resolves a session by its opaque session key, for
// clients that stored the key from a start response rather than the user id.
func (h *APIHandler) SessionByKeyHandler(c *gin.Context) {
	session, err := h.sessionService.GetSessionByKey(c.Param("sessionKey"))
	if err != nil {
		utils.SendJSONError(c, statusFor(err), err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"session":  session,
		"progress": h.sessionService.Progress(session),
	}})
}

// ResultHandler returns the archetype matches and vulnerability assessment
// for a complete session.
func (h *APIHandler) ResultHandler(c *gin.Context) {
	userID := c.Param("userID")
	result, err := h.sessionService.GetResult(userID)
	if err != nil {
		utils.SendJSONError(c, statusFor(err), err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}

// ScenarioHandler returns one catalog scenario by id.
func (h *APIHandler) ScenarioHandler(c *gin.Context) {
	scenario, err := h.catalog.GetScenario(c.Param("id"))
	if err != nil {
		utils.SendJSONError(c, statusFor(err), err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": scenario})
}
