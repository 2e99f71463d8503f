package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

const commentColumns = `comment_id, item_id, profile_id, parent_id, text, likes, dislikes, created_at`

// CreateComment stores a comment or a reply
func (r *PostgresRepo) CreateComment(ctx context.Context, comment models.Comment) error {
	if _, err := r.GetItem(ctx, comment.ItemID); err != nil {
		return err
	}
	if comment.ParentID != nil {
		parent, err := r.GetComment(ctx, *comment.ParentID)
		if err != nil {
			return err
		}
		if parent.ItemID != comment.ItemID {
			return fmt.Errorf("reply to comment %s: %w", parent.CommentID, auctionerrors.ErrCommentNotFound)
		}
	}
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO comments (`+commentColumns+`) VALUES
		(:comment_id, :item_id, :profile_id, :parent_id, :text, :likes, :dislikes, :created_at)`, comment)
	if err != nil {
		return fmt.Errorf("create comment: %w", mapErr(err, auctionerrors.ErrCommentNotFound))
	}
	return nil
}

// GetComment returns a single comment
func (r *PostgresRepo) GetComment(ctx context.Context, commentID string) (models.Comment, error) {
	var comment models.Comment
	query := `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1`
	if err := r.db.GetContext(ctx, &comment, query, commentID); err != nil {
		return models.Comment{}, fmt.Errorf("get comment %s: %w", commentID, mapErr(err, auctionerrors.ErrCommentNotFound))
	}
	return comment, nil
}

// ListComments returns the top-level comments of an item, oldest first
func (r *PostgresRepo) ListComments(ctx context.Context, itemID string) ([]models.Comment, error) {
	if _, err := r.GetItem(ctx, itemID); err != nil {
		return nil, err
	}
	comments := []models.Comment{}
	query := `SELECT ` + commentColumns + ` FROM comments
		WHERE item_id = $1 AND parent_id IS NULL ORDER BY created_at, comment_id`
	if err := r.db.SelectContext(ctx, &comments, query, itemID); err != nil {
		return nil, fmt.Errorf("list comments of item %s: %w", itemID, err)
	}
	return comments, nil
}

// ListReplies returns the replies to a comment, oldest first
func (r *PostgresRepo) ListReplies(ctx context.Context, parentID string) ([]models.Comment, error) {
	if _, err := r.GetComment(ctx, parentID); err != nil {
		return nil, err
	}
	comments := []models.Comment{}
	query := `SELECT ` + commentColumns + ` FROM comments WHERE parent_id = $1 ORDER BY created_at, comment_id`
	if err := r.db.SelectContext(ctx, &comments, query, parentID); err != nil {
		return nil, fmt.Errorf("list replies of comment %s: %w", parentID, err)
	}
	return comments, nil
}

// DeleteComment removes a comment; replies and reactions cascade
func (r *PostgresRepo) DeleteComment(ctx context.Context, commentID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("delete comment %s: %w", commentID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete comment %s: %w", commentID, auctionerrors.ErrCommentNotFound)
	}
	return nil
}

// React toggles a profile's reaction on a comment
func (r *PostgresRepo) React(ctx context.Context, commentID, profileID string, kind models.ReactionKind) (models.Comment, error) {
	var comment models.Comment
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1 FOR UPDATE`
		if err := tx.GetContext(ctx, &comment, query, commentID); err != nil {
			return mapErr(err, auctionerrors.ErrCommentNotFound)
		}

		var previous models.ReactionKind
		err := tx.GetContext(ctx, &previous,
			`SELECT kind FROM comment_reactions WHERE comment_id = $1 AND profile_id = $2`, commentID, profileID)
		had := err == nil
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		if had {
			adjustReaction(&comment, previous, -1)
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM comment_reactions WHERE comment_id = $1 AND profile_id = $2`, commentID, profileID); err != nil {
				return err
			}
		}
		if !had || previous != kind {
			adjustReaction(&comment, kind, 1)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO comment_reactions (comment_id, profile_id, kind) VALUES ($1, $2, $3)`,
				commentID, profileID, kind); err != nil {
				return err
			}
		}
		_, err = tx.ExecContext(ctx, `UPDATE comments SET likes = $2, dislikes = $3 WHERE comment_id = $1`,
			commentID, comment.Likes, comment.Dislikes)
		return err
	})
	if err != nil {
		return models.Comment{}, fmt.Errorf("react to comment %s: %w", commentID, err)
	}
	return comment, nil
}

// SaveItem adds an item to a profile's saved list; saving twice is a no-op
func (r *PostgresRepo) SaveItem(ctx context.Context, save models.SavedItem) error {
	if _, err := r.GetItem(ctx, save.ItemID); err != nil {
		return err
	}
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO saved_items (profile_id, item_id, saved_at)
		VALUES (:profile_id, :item_id, :saved_at) ON CONFLICT DO NOTHING`, save)
	if err != nil {
		return fmt.Errorf("save item %s: %w", save.ItemID, err)
	}
	return nil
}

// ListSavedItems returns a profile's saved items, most recent first
func (r *PostgresRepo) ListSavedItems(ctx context.Context, profileID string) ([]models.SavedItem, error) {
	saves := []models.SavedItem{}
	query := `SELECT profile_id, item_id, saved_at FROM saved_items WHERE profile_id = $1 ORDER BY saved_at DESC`
	if err := r.db.SelectContext(ctx, &saves, query, profileID); err != nil {
		return nil, fmt.Errorf("list saved items: %w", err)
	}
	return saves, nil
}

// DeleteSavedItem removes an item from a profile's saved list
func (r *PostgresRepo) DeleteSavedItem(ctx context.Context, profileID, itemID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_items WHERE profile_id = $1 AND item_id = $2`, profileID, itemID)
	if err != nil {
		return fmt.Errorf("delete saved item %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete saved item %s: %w", itemID, auctionerrors.ErrNotFound)
	}
	return nil
}
