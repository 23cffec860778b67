package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/app/services"
	"github.com/arnab/campusgate/internal/middleware"
	"github.com/arnab/campusgate/internal/pkg/apperrors"
)

// CollegeController handles college catalog endpoints
type CollegeController struct {
	collegeService *services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService *services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// List retrieves the college catalog
// @Summary List colleges
// @Description Retrieves all colleges with their branches. Public.
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.College} "Colleges retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [get]
func (c *CollegeController) List(ctx *gin.Context) {
	colleges, err := c.collegeService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(colleges, "Colleges retrieved successfully"))
}

// Create adds a college
// @Summary Create a college
// @Description Adds a college with its branch list to the catalog. Admin only.
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCollegeRequest true "College information"
// @Success 201 {object} dto.APIResponse{data=models.College} "College created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [post]
func (c *CollegeController) Create(ctx *gin.Context) {
	caller, ok := middleware.CallerIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	college, err := c.collegeService.Create(ctx, caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(college, "College created successfully"))
}

// Update changes a college
// @Summary Update a college
// @Description Updates a college's name; a supplied branches array replaces the entire branch list. Admin only.
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateCollegeRequest true "Updated college information"
// @Success 200 {object} dto.APIResponse{data=models.College} "College updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [put]
func (c *CollegeController) Update(ctx *gin.Context) {
	caller, ok := middleware.CallerIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.UpdateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	college, err := c.collegeService.Update(ctx, caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(college, "College updated successfully"))
}

// Delete removes a college
// @Summary Delete a college
// @Description Removes a college from the catalog. Admin only.
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteCollegeRequest true "College to delete"
// @Success 200 {object} dto.APIResponse "College deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [delete]
func (c *CollegeController) Delete(ctx *gin.Context) {
	caller, ok := middleware.CallerIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.DeleteCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.collegeService.Delete(ctx, caller, req.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "College deleted successfully"))
}
