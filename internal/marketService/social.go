package market

import (
	"context"
	"fmt"
	"strings"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

// MaxCommentLength bounds the text of a single comment
const MaxCommentLength = 2000

// PostComment adds a comment to an item, or a reply when parentID is set
func (s *MarketService) PostComment(ctx context.Context, profileID, itemID, text string, parentID *string) (models.Comment, error) {
	text = strings.TrimSpace(text)
	switch {
	case profileID == "" || itemID == "":
		return models.Comment{}, fmt.Errorf("service: %w - missing profile or item ID", auctionerrors.ErrInvalidInput)
	case text == "":
		return models.Comment{}, fmt.Errorf("service: %w - comment text is required", auctionerrors.ErrInvalidInput)
	case len(text) > MaxCommentLength:
		return models.Comment{}, fmt.Errorf("service: %w - comment is longer than %d characters", auctionerrors.ErrInvalidInput, MaxCommentLength)
	}
	if parentID != nil && *parentID == "" {
		parentID = nil
	}

	comment := models.Comment{
		CommentID: utils.GenerateID(),
		ItemID:    itemID,
		ProfileID: profileID,
		ParentID:  parentID,
		Text:      text,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to post comment on item %s: %w", itemID, err)
	}
	return comment, nil
}

// ListComments returns the top-level comments of an item, oldest first
func (s *MarketService) ListComments(ctx context.Context, itemID string) ([]models.Comment, error) {
	comments, err := s.repo.ListComments(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list comments of item %s: %w", itemID, err)
	}
	return comments, nil
}

// ListReplies returns the replies to a comment, oldest first
func (s *MarketService) ListReplies(ctx context.Context, commentID string) ([]models.Comment, error) {
	replies, err := s.repo.ListReplies(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list replies of comment %s: %w", commentID, err)
	}
	return replies, nil
}

// DeleteComment removes the author's comment together with its replies
func (s *MarketService) DeleteComment(ctx context.Context, profileID, commentID string) error {
	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return fmt.Errorf("service: failed to get comment %s: %w", commentID, err)
	}
	if comment.ProfileID != profileID {
		return fmt.Errorf("service: %w - only the author can delete comment %s", auctionerrors.ErrForbidden, commentID)
	}
	if err := s.repo.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("service: failed to delete comment %s: %w", commentID, err)
	}
	return nil
}

// React toggles a like or dislike on a comment
func (s *MarketService) React(ctx context.Context, profileID, commentID string, kind models.ReactionKind) (models.Comment, error) {
	if kind != models.ReactionLike && kind != models.ReactionDislike {
		return models.Comment{}, fmt.Errorf("service: %w - unknown reaction %q", auctionerrors.ErrInvalidInput, kind)
	}
	if profileID == "" {
		return models.Comment{}, fmt.Errorf("service: %w - empty profile ID", auctionerrors.ErrInvalidInput)
	}
	comment, err := s.repo.React(ctx, commentID, profileID, kind)
	if err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to react to comment %s: %w", commentID, err)
	}
	return comment, nil
}

// SaveItem adds someone else's item to the profile's saved list
func (s *MarketService) SaveItem(ctx context.Context, profileID, itemID string) error {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.ProfileID == profileID {
		return fmt.Errorf("service: %w - cannot save your own item", auctionerrors.ErrForbidden)
	}
	save := models.SavedItem{ProfileID: profileID, ItemID: itemID, SavedAt: s.clock.Now()}
	if err := s.repo.SaveItem(ctx, save); err != nil {
		return fmt.Errorf("service: failed to save item %s: %w", itemID, err)
	}
	return nil
}

// ListSavedItems returns the items a profile saved, most recent first
func (s *MarketService) ListSavedItems(ctx context.Context, profileID string) ([]models.Item, error) {
	saved, err := s.repo.ListSavedItems(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list saved items: %w", err)
	}

	items := make([]models.Item, 0, len(saved))
	for _, sv := range saved {
		item, err := s.repo.GetItem(ctx, sv.ItemID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load saved item %s: %w", sv.ItemID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// DeleteSavedItem removes an item from the profile's saved list
func (s *MarketService) DeleteSavedItem(ctx context.Context, profileID, itemID string) error {
	if err := s.repo.DeleteSavedItem(ctx, profileID, itemID); err != nil {
		return fmt.Errorf("service: failed to remove saved item %s: %w", itemID, err)
	}
	return nil
}
