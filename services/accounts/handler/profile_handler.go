package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accounts "bluepenguin/internal/accountService"
	"bluepenguin/pkg/api"
	"bluepenguin/services/helpers"
	"bluepenguin/utils"
)

// GetProfileHandler handles GET /api/profiles/:profile_id
func (h *AccountHandler) GetProfileHandler(c *gin.Context) {
	profileID := c.Param("profile_id")
	profile, err := h.service.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		helpers.RespondError(c, "GetProfileHandler", err, map[string]any{"profile_id": profileID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, profile, "profile retrieved successfully")
}

// GetOwnProfileHandler handles GET /api/profiles/me
func (h *AccountHandler) GetOwnProfileHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "GetOwnProfileHandler")
	if !ok {
		return
	}
	profile, err := h.service.GetOwnProfile(c.Request.Context(), session.AccountID)
	if err != nil {
		helpers.RespondError(c, "GetOwnProfileHandler", err, map[string]any{"account_id": session.AccountID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, profile, "profile retrieved successfully")
}

// EditProfileHandler handles PATCH /api/profiles/me
func (h *AccountHandler) EditProfileHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "EditProfileHandler")
	if !ok {
		return
	}
	var req api.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EditProfileHandler", err)
		return
	}

	profile, err := h.service.EditProfile(c.Request.Context(), session.AccountID, accounts.ProfileInput{
		DisplayName: req.DisplayName,
		DisplayIcon: req.DisplayIcon,
		Description: req.Description,
	})
	if err != nil {
		helpers.RespondError(c, "EditProfileHandler", err, map[string]any{"account_id": session.AccountID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "profile updated successfully")
	helpers.LogSuccess("EditProfileHandler", "profile updated successfully", map[string]any{"profile_id": profile.ProfileID})
}

// RateProfileHandler handles POST /api/profiles/:profile_id/rate
func (h *AccountHandler) RateProfileHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "RateProfileHandler")
	if !ok {
		return
	}
	var req api.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RateProfileHandler", err)
		return
	}

	rateeID := c.Param("profile_id")
	profile, err := h.service.RateProfile(c.Request.Context(), session.ProfileID, rateeID, req.Score)
	if err != nil {
		helpers.RespondError(c, "RateProfileHandler", err, map[string]any{"profile_id": rateeID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "rating recorded successfully")
	helpers.LogSuccess("RateProfileHandler", "rating recorded successfully", map[string]any{
		"rater":   session.ProfileID,
		"ratee":   rateeID,
		"score":   req.Score,
		"average": profile.AverageRating,
	})
}

// ReportProfileHandler handles POST /api/profiles/:profile_id/report
func (h *AccountHandler) ReportProfileHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "ReportProfileHandler")
	if !ok {
		return
	}
	var req api.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReportProfileHandler", err)
		return
	}

	reporteeID := c.Param("profile_id")
	report, err := h.service.ReportProfile(c.Request.Context(), session.ProfileID, reporteeID, req.Text)
	if err != nil {
		helpers.RespondError(c, "ReportProfileHandler", err, map[string]any{"profile_id": reporteeID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, report, "report submitted successfully")
	helpers.LogSuccess("ReportProfileHandler", "report submitted successfully", map[string]any{
		"report_id": report.ReportID,
		"reporter":  session.ProfileID,
		"reportee":  reporteeID,
	})
}
