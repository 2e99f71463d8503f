package repository

import (
	"context"
	"fmt"
	"sort"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

// CreateComment stores a comment or a reply
func (r *MemoryRepo) CreateComment(ctx context.Context, comment models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[comment.ItemID]; !ok {
		return fmt.Errorf("comment on item %s: %w", comment.ItemID, auctionerrors.ErrItemNotFound)
	}
	if comment.ParentID != nil {
		parent, ok := r.comments[*comment.ParentID]
		if !ok || parent.ItemID != comment.ItemID {
			return fmt.Errorf("reply to comment %s: %w", *comment.ParentID, auctionerrors.ErrCommentNotFound)
		}
	}
	if _, exists := r.comments[comment.CommentID]; exists {
		return fmt.Errorf("create comment %s: %w", comment.CommentID, auctionerrors.ErrConflict)
	}
	r.comments[comment.CommentID] = comment
	return nil
}

// GetComment returns a single comment
func (r *MemoryRepo) GetComment(ctx context.Context, commentID string) (models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.comments[commentID]
	if !ok {
		return models.Comment{}, fmt.Errorf("get comment %s: %w", commentID, auctionerrors.ErrCommentNotFound)
	}
	return comment, nil
}

// ListComments returns the top-level comments of an item, oldest first
func (r *MemoryRepo) ListComments(ctx context.Context, itemID string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.items[itemID]; !ok {
		return nil, fmt.Errorf("list comments of item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	out := []models.Comment{}
	for _, c := range r.comments {
		if c.ItemID == itemID && c.ParentID == nil {
			out = append(out, c)
		}
	}
	sortCommentsOldestFirst(out)
	return out, nil
}

// ListReplies returns the replies to a comment, oldest first
func (r *MemoryRepo) ListReplies(ctx context.Context, parentID string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.comments[parentID]; !ok {
		return nil, fmt.Errorf("list replies of comment %s: %w", parentID, auctionerrors.ErrCommentNotFound)
	}
	out := []models.Comment{}
	for _, c := range r.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	sortCommentsOldestFirst(out)
	return out, nil
}

// DeleteComment removes a comment with its replies and reactions
func (r *MemoryRepo) DeleteComment(ctx context.Context, commentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[commentID]; !ok {
		return fmt.Errorf("delete comment %s: %w", commentID, auctionerrors.ErrCommentNotFound)
	}
	r.deleteCommentTreeLocked(commentID)
	return nil
}

// deleteCommentTreeLocked removes commentID and every reply below it, at any depth
func (r *MemoryRepo) deleteCommentTreeLocked(commentID string) {
	children := make(map[string][]string)
	for id, c := range r.comments {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], id)
		}
	}
	queue := []string{commentID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		queue = append(queue, children[id]...)
		delete(r.comments, id)
		delete(r.reactions, id)
	}
}

// React toggles a profile's reaction on a comment. Repeating the same reaction removes it;
// switching kind moves the vote.
func (r *MemoryRepo) React(ctx context.Context, commentID, profileID string, kind models.ReactionKind) (models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.comments[commentID]
	if !ok {
		return models.Comment{}, fmt.Errorf("react to comment %s: %w", commentID, auctionerrors.ErrCommentNotFound)
	}
	votes, ok := r.reactions[commentID]
	if !ok {
		votes = make(map[string]models.ReactionKind)
		r.reactions[commentID] = votes
	}

	previous, had := votes[profileID]
	if had {
		adjustReaction(&comment, previous, -1)
		delete(votes, profileID)
	}
	if !had || previous != kind {
		adjustReaction(&comment, kind, 1)
		votes[profileID] = kind
	}
	r.comments[commentID] = comment
	return comment, nil
}

// SaveItem adds an item to a profile's saved list; saving twice is a no-op
func (r *MemoryRepo) SaveItem(ctx context.Context, save models.SavedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[save.ItemID]; !ok {
		return fmt.Errorf("save item %s: %w", save.ItemID, auctionerrors.ErrItemNotFound)
	}
	saved, ok := r.saves[save.ProfileID]
	if !ok {
		saved = make(map[string]models.SavedItem)
		r.saves[save.ProfileID] = saved
	}
	if _, exists := saved[save.ItemID]; !exists {
		saved[save.ItemID] = save
	}
	return nil
}

// ListSavedItems returns a profile's saved items, most recent first
func (r *MemoryRepo) ListSavedItems(ctx context.Context, profileID string) ([]models.SavedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.SavedItem{}
	for _, s := range r.saves[profileID] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	return out, nil
}

// DeleteSavedItem removes an item from a profile's saved list
func (r *MemoryRepo) DeleteSavedItem(ctx context.Context, profileID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := r.saves[profileID]
	if _, ok := saved[itemID]; !ok {
		return fmt.Errorf("delete saved item %s: %w", itemID, auctionerrors.ErrNotFound)
	}
	delete(saved, itemID)
	return nil
}

func adjustReaction(c *models.Comment, kind models.ReactionKind, delta int) {
	switch kind {
	case models.ReactionLike:
		c.Likes += delta
	case models.ReactionDislike:
		c.Dislikes += delta
	}
}

func sortCommentsOldestFirst(comments []models.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CommentID < comments[j].CommentID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}
