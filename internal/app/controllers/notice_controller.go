package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/app/services"
	"github.com/arnab/campusgate/internal/middleware"
	"github.com/arnab/campusgate/internal/pkg/apperrors"
)

// NoticeController handles announcement endpoints
type NoticeController struct {
	noticeService *services.NoticeService
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService *services.NoticeService) *NoticeController {
	return &NoticeController{
		noticeService: noticeService,
	}
}

// List retrieves notices
// @Summary List notices
// @Description Retrieves notices newest first. Admins see drafts too; everyone else only published notices. Works without a token.
// @Tags notices
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Notice} "Notices retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notice [get]
func (c *NoticeController) List(ctx *gin.Context) {
	var caller *services.Identity
	if identity, ok := middleware.CallerIdentity(ctx); ok {
		caller = &identity
	}

	notices, err := c.noticeService.List(ctx, caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notices, "Notices retrieved successfully"))
}

// Create publishes a notice
// @Summary Create a notice
// @Description Creates a notice, published or draft. Admin only.
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNoticeRequest true "Notice content"
// @Success 201 {object} dto.APIResponse{data=models.Notice} "Notice created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Admin account no longer exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notice [post]
func (c *NoticeController) Create(ctx *gin.Context) {
	caller, ok := middleware.CallerIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	notice, err := c.noticeService.Create(ctx, caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(notice, "Notice created successfully"))
}

// Update replaces a notice's content
// @Summary Update a notice
// @Description Replaces a notice's content and publish flag, resetting its date. Admin only.
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateNoticeRequest true "Updated notice content"
// @Success 200 {object} dto.APIResponse{data=models.Notice} "Notice updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notice [put]
func (c *NoticeController) Update(ctx *gin.Context) {
	caller, ok := middleware.CallerIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.UpdateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	notice, err := c.noticeService.Update(ctx, caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notice, "Notice updated successfully"))
}

// Delete removes a notice
// @Summary Delete a notice
// @Description Removes a notice. Admin only.
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteNoticeRequest true "Notice to delete"
// @Success 200 {object} dto.APIResponse "Notice deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notice [delete]
func (c *NoticeController) Delete(ctx *gin.Context) {
	caller, ok := middleware.CallerIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.DeleteNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.noticeService.Delete(ctx, caller, req.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Notice deleted successfully"))
}
