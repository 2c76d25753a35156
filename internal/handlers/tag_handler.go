package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/services"
)

// TagHandler handles tag-related requests.
type TagHandler struct {
	tagService   services.TagServicer
	auditService services.AuditServicer
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService services.TagServicer, auditService services.AuditServicer) *TagHandler {
	return &TagHandler{tagService: tagService, auditService: auditService}
}

// CreateTagRequest represents the request payload for creating a tag.
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Color string `json:"color" binding:"omitempty,hex_color"`
}

// UpdateTagRequest represents the request payload for renaming or recoloring a tag.
type UpdateTagRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=50"`
	Color *string `json:"color" binding:"omitempty,hex_color"`
}

// CreateTag handles the creation of a new tag
// @Summary     Create a tag
// @Description Tag names are unique per user, ignoring case
// @Tags        tags
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTagRequest true "Tag details"
// @Success     201 {object} models.Tag "Tag created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate tag"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), userID, req.Name, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TAG", "tag", tag.ID, c.ClientIP(),
		map[string]interface{}{"name": tag.Name})

	c.JSON(http.StatusCreated, gin.H{"tag": tag})
}

// GetTags handles listing tags
// @Summary     Get tags
// @Tags        tags
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.Tag "Tags by name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tags [get]
func (h *TagHandler) GetTags(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tags, err := h.tagService.GetUserTags(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// GetTag handles retrieving a specific tag
// @Summary     Get tag by ID
// @Tags        tags
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Tag ID"
// @Success     200 {object} models.Tag "Tag details"
// @Failure     400 {object} ErrorResponse "Invalid tag ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Tag not found"
// @Router      /tags/{id} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tagID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tag, err := h.tagService.GetTagByID(c.Request.Context(), userID, tagID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tag": tag})
}

// UpdateTag handles renaming a tag. Existing transactions keep the name
// they were tagged with.
// @Summary     Update tag
// @Tags        tags
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string           true "Tag ID"
// @Param       request body UpdateTagRequest true "Updated tag details"
// @Success     200 {object} models.Tag "Updated tag"
// @Failure     400 {object} ErrorResponse "Invalid input or tag ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Tag not found"
// @Failure     409 {object} ErrorResponse "Duplicate tag"
// @Router      /tags/{id} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tagID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tag, err := h.tagService.UpdateTag(c.Request.Context(), userID, tagID, req.Name, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TAG", "tag", tagID, c.ClientIP(),
		map[string]interface{}{"name": tag.Name})

	c.JSON(http.StatusOK, gin.H{"tag": tag})
}

// DeleteTag handles deleting a tag
// @Summary     Delete tag
// @Tags        tags
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Tag ID"
// @Success     200 {object} MessageResponse "Tag deleted"
// @Failure     400 {object} ErrorResponse "Invalid tag ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Tag not found"
// @Router      /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tagID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.tagService.DeleteTag(c.Request.Context(), userID, tagID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TAG", "tag", tagID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
}
