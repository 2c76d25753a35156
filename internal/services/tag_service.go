package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/events"
	"carteira/internal/models"
)

// tagService handles tag-related business logic.
type tagService struct {
	db     *gorm.DB
	events events.Publisher
}

// NewTagService creates a new TagServicer.
func NewTagService(db *gorm.DB, pub events.Publisher) TagServicer {
	return &tagService{db: db, events: publisherOrNop(pub)}
}

// ensureUniqueName rejects a name another tag of the user already uses,
// ignoring case.
func (s *tagService) ensureUniqueName(db *gorm.DB, userID, name, exceptID string) error {
	q := db.Model(&models.Tag{}).Where("user_id = ? AND LOWER(name) = ?", userID, strings.ToLower(name))
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if n > 0 {
		return apperrors.ErrDuplicateTag
	}
	return nil
}

// CreateTag creates a new tag.
func (s *tagService) CreateTag(ctx context.Context, userID, name, color string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tag name is required")
	}

	db := s.db.WithContext(ctx)
	if err := s.ensureUniqueName(db, userID, name, ""); err != nil {
		return nil, err
	}

	tag := &models.Tag{UserID: userID, Name: name, Color: color}
	if err := db.Create(tag).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityTag, events.ActionCreated, tag.ID)
	return tag, nil
}

// GetUserTags returns all of a user's tags ordered by name.
func (s *tagService) GetUserTags(ctx context.Context, userID string) ([]models.Tag, error) {
	tags := []models.Tag{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tags, nil
}

// GetTagByID retrieves a tag by ID for a specific user.
func (s *tagService) GetTagByID(ctx context.Context, userID, tagID string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", tagID, userID).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tag, nil
}

// UpdateTag renames or recolors a tag. Transactions keep the snapshot they
// were written with.
func (s *tagService) UpdateTag(ctx context.Context, userID, tagID string, name, color *string) (*models.Tag, error) {
	tag, err := s.GetTagByID(ctx, userID, tagID)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	updates := make(map[string]interface{})
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tag name cannot be empty")
		}
		if err := s.ensureUniqueName(db, userID, trimmed, tag.ID); err != nil {
			return nil, err
		}
		updates["name"] = trimmed
	}
	if color != nil {
		updates["color"] = *color
	}

	if len(updates) > 0 {
		if err := db.Model(tag).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := db.Where("id = ?", tag.ID).First(tag).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		publish(ctx, s.events, userID, events.EntityTag, events.ActionUpdated, tag.ID)
	}

	return tag, nil
}

// DeleteTag deletes a tag. Existing transactions keep their snapshot.
func (s *tagService) DeleteTag(ctx context.Context, userID, tagID string) error {
	tag, err := s.GetTagByID(ctx, userID, tagID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(tag).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityTag, events.ActionDeleted, tag.ID)
	return nil
}
