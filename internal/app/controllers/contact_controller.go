package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/app/services"
	"github.com/arnab/campusgate/internal/middleware"
)

// ContactController handles public inquiry endpoints
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// Submit records an inquiry
// @Summary Submit a contact inquiry
// @Description Records an inquiry from the public contact form. No authentication required.
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Inquiry information"
// @Success 201 {object} dto.APIResponse{data=models.Contact} "Inquiry submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contacts [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	contact, err := c.contactService.Submit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(contact, "Inquiry submitted successfully"))
}

// List retrieves every inquiry
// @Summary List contact inquiries
// @Description Retrieves all inquiries, newest first
// @Tags contacts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Contact} "Inquiries retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contacts [get]
func (c *ContactController) List(ctx *gin.Context) {
	contacts, err := c.contactService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contacts, "Inquiries retrieved successfully"))
}
