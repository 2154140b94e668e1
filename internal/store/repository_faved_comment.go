package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/models"
)

type favedCommentRepository struct {
	*DB
	logger *logger.Logger
}

// NewFavedCommentRepository returns the SQLite-backed [FavedCommentRepository].
func NewFavedCommentRepository(db *DB, logger *logger.Logger) FavedCommentRepository {
	return &favedCommentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *favedCommentRepository) ReplaceComments(ctx context.Context, owner string, flags models.ContentType, comments []models.FavedComment) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(owner) == "" {
		return ErrEmptyOwner
	}

	deleteQuery, deleteArgs, err := buildDeleteCommentsQuery(owner, flags)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "favedCommentRepository.ReplaceComments").
			Int("count", len(comments)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "favedCommentRepository.ReplaceComments").
			Int("flags", int(flags)).
			Msg("failed to clear cached faved comments")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for idx, comment := range comments {
		query, args, buildErr := buildInsertCommentQuery(owner, flags, comment)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "favedCommentRepository.ReplaceComments").
				Int("iteration", idx+1).
				Int64("comment_id", comment.ID).
				Msg("failed to insert faved comment")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "favedCommentRepository.ReplaceComments").
			Int("count", len(comments)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Int("count", len(comments)).
		Int("flags", int(flags)).
		Msg("replaced cached faved comments")

	return nil
}

func (r *favedCommentRepository) GetComments(ctx context.Context, owner string, flags models.ContentType) ([]models.FavedComment, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(owner) == "" {
		return nil, ErrEmptyOwner
	}

	query, args, err := buildSelectCommentsQuery(owner, flags)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "favedCommentRepository.GetComments").
			Int("flags", int(flags)).
			Msg("failed to query cached faved comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.FavedComment, 0)
	for rows.Next() {
		var (
			comment models.FavedComment
			created      int64
			contentFlags int
		)
		scanErr := rows.Scan(
			&comment.ID,
			&comment.ItemID,
			&comment.Name,
			&comment.Content,
			&comment.Up,
			&comment.Down,
			&comment.Thumb,
			&created,
			&comment.Mark,
			&contentFlags,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "favedCommentRepository.GetComments").
				Msg("failed to scan faved comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		if created != 0 {
			comment.Created = models.Timestamp{Time: time.Unix(created, 0).UTC()}
		}
		comment.Flags = models.ContentType(contentFlags)
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}
