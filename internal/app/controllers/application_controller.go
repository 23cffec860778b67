package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/app/services"
	"github.com/arnab/campusgate/internal/middleware"
	"github.com/arnab/campusgate/internal/pkg/apperrors"
)

// ApplicationController handles admission application endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// Submit handles application submission
// @Summary Submit an application
// @Description Creates an admission application owned by the authenticated user
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitApplicationRequest true "Application information"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "College or branch not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /apply [post]
func (c *ApplicationController) Submit(ctx *gin.Context) {
	caller, ok := middleware.CallerIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	app, err := c.applicationService.Submit(ctx, caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewApplicationResponse(app), "Application submitted successfully"))
}

// ListAll retrieves every application
// @Summary List all applications
// @Description Retrieves all applications, newest first. Admin only.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /apply [get]
func (c *ApplicationController) ListAll(ctx *gin.Context) {
	caller, ok := middleware.CallerIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	apps, err := c.applicationService.ListAll(ctx, caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewApplicationListResponse(apps), "Applications retrieved successfully"))
}

// ListByUser retrieves the applications of a specific user
// @Summary List a user's applications
// @Description Retrieves applications owned by the given user. Callers may only read their own unless they are admins.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /application/{userId} [get]
func (c *ApplicationController) ListByUser(ctx *gin.Context) {
	caller, ok := middleware.CallerIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	userID := ctx.Param("userId")
	apps, err := c.applicationService.ListByUser(ctx, caller, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewApplicationListResponse(apps), "Applications retrieved successfully"))
}

// Delete removes an application
// @Summary Delete an application
// @Description Deletes an application. Only the owner or an admin may delete it.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteApplicationRequest true "Application to delete"
// @Success 200 {object} dto.APIResponse "Application deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /apply [delete]
func (c *ApplicationController) Delete(ctx *gin.Context) {
	caller, ok := middleware.CallerIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.DeleteApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.applicationService.Delete(ctx, caller, req.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Application deleted successfully"))
}

// AttachDocuments uploads identity documents for an application
// @Summary Upload application documents
// @Description Stores the aadhar card and mark sheet files for an application and records their URLs
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param aadharCard formData file false "Aadhar card scan"
// @Param markSheet formData file false "Class 12 mark sheet scan"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse} "Documents uploaded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /apply/{id}/documents [post]
func (c *ApplicationController) AttachDocuments(ctx *gin.Context) {
	caller, ok := middleware.CallerIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	aadharCard, err := ctx.FormFile("aadharCard")
	if err != nil {
		aadharCard = nil
	}
	markSheet, err := ctx.FormFile("markSheet")
	if err != nil {
		markSheet = nil
	}

	app, err := c.applicationService.AttachDocuments(ctx, caller, ctx.Param("id"), aadharCard, markSheet)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewApplicationResponse(app), "Documents uploaded successfully"))
}
