package dto

// CreateNoticeRequest creates a notice; IsPublished defaults to false
type CreateNoticeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	IsPublished *bool  `json:"isPublished"`
}

// UpdateNoticeRequest replaces a notice's content and publish flag.
// The publish date is reset to the time of the update.
type UpdateNoticeRequest struct {
	ID          string `json:"id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	IsPublished *bool  `json:"isPublished" binding:"required"`
}

// DeleteNoticeRequest identifies the notice to remove
type DeleteNoticeRequest struct {
	ID string `json:"id" binding:"required"`
}
