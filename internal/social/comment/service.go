// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package comment

import (
	"context"
	"log/slog"

	"github.com/trananh/movira/internal/platform/apperr"
	"github.com/trananh/movira/internal/platform/constants"
	"github.com/trananh/movira/internal/platform/sec"
	"github.com/trananh/movira/internal/platform/validate"
	"github.com/trananh/movira/internal/social/subject"
	"github.com/trananh/movira/pkg/uuidv7"
)

// Service implements the comment thread use cases.
type Service struct {
	repo     Repository
	subjects subject.Resolver
	logger   *slog.Logger
}

func NewService(repo Repository, subjects subject.Resolver, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		subjects: subjects,
		logger:   logger,
	}
}

// ListThread returns the assembled reply forest for one subject.
//
// The subject is resolved first so a request against a deleted or unknown
// subject yields NotFound instead of an empty thread.
func (service *Service) ListThread(context context.Context, kind subject.Kind, subjectID string) ([]*Comment, error) {
	if _, err := service.subjects.Resolve(context, kind, subjectID); err != nil {
		return nil, err
	}

	comments, err := service.repo.ListBySubject(context, subjectID)
	if err != nil {
		return nil, err
	}

	return BuildTree(comments), nil
}

// Create posts a new comment or reply on a subject.
//
// A reply's parent must exist and must belong to the same subject; because a
// parent can only ever be an already-stored (strictly older) comment, the
// parent chain can never form a cycle.
func (service *Service) Create(context context.Context, kind subject.Kind, subjectID, authorID string, parentID *string, body string) (*Comment, error) {
	validator := &validate.Validator{}
	validator.Required(FieldBody, body).MaxLen(FieldBody, body, constants.MaxCommentLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.subjects.Resolve(context, kind, subjectID); err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := service.repo.Get(context, *parentID)
		if err != nil {
			return nil, apperr.Unprocessable("Parent comment not found")
		}
		if parent.SubjectID != subjectID {
			return nil, apperr.Unprocessable("Parent comment belongs to a different subject")
		}
	}

	c := &Comment{
		ID:        uuidv7.New(),
		SubjectID: subjectID,
		AuthorID:  authorID,
		ParentID:  parentID,
		Body:      body,
	}

	if err := service.repo.Create(context, c); err != nil {
		return nil, err
	}

	service.logger.Info("comment_created",
		slog.String("comment_id", c.ID),
		slog.String("subject_id", subjectID),
		slog.Bool("is_reply", parentID != nil),
	)
	return c, nil
}

// Edit replaces the body of a comment. Only the author may edit.
func (service *Service) Edit(context context.Context, id, editorID, body string) (*Comment, error) {
	validator := &validate.Validator{}
	validator.Required(FieldBody, body).MaxLen(FieldBody, body, constants.MaxCommentLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	existing, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	if existing.AuthorID != editorID {
		return nil, apperr.Forbidden("Only the author can edit a comment")
	}

	return service.repo.UpdateBody(context, id, body)
}

// Delete removes a comment.
//
// The author or a moderator may delete. A comment that still has replies is
// rejected with a specific conflict so the caller can distinguish "delete
// the replies first" from a generic failure. With cascade the whole subtree
// is removed children-first instead.
func (service *Service) Delete(context context.Context, id string, claims *sec.AuthClaims, cascade bool) error {
	existing, err := service.repo.Get(context, id)
	if err != nil {
		return err
	}

	isAuthor := existing.AuthorID == claims.UserID
	isModerator := sec.UserRole(claims.Role).AtLeast(sec.RoleModerator)
	if !isAuthor && !isModerator {
		return apperr.Forbidden("Only the author or a moderator can delete a comment")
	}

	if cascade {
		removed, err := service.repo.DeleteSubtree(context, id)
		if err != nil {
			return err
		}
		service.logger.Warn("comment_subtree_deleted",
			slog.String("comment_id", id),
			slog.Int("removed", removed),
		)
		return nil
	}

	replies, err := service.repo.CountReplies(context, id)
	if err != nil {
		return err
	}
	if replies > 0 {
		return apperr.Conflict("Comment has replies, delete them first")
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("comment_deleted", slog.String("comment_id", id))
	return nil
}
