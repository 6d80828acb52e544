package community

import (
	"context"
	"strings"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/validation"

	"go.uber.org/zap"
)

const (
	// DefaultBoard is the board listed when the caller names none.
	DefaultBoard   = "first"
	defaultBoardID = 1

	msgInvalidPost = "게시글 정보를 확인해주세요."
)

type BoardBackend interface {
	ListPosts(ctx context.Context, board string, params backend.ContentListParams) ([]backend.Post, *backend.PageMeta, error)
	GetPost(ctx context.Context, id int64) (*backend.Post, error)
	CreatePost(ctx context.Context, cred backend.Credentials, req backend.PostRequest) (*backend.Post, error)
	UpdatePost(ctx context.Context, cred backend.Credentials, id int64, req backend.PostRequest) (*backend.Post, error)
	DeletePost(ctx context.Context, cred backend.Credentials, id int64) error
	ListPostComments(ctx context.Context, postID int64) ([]backend.Comment, error)
	CreatePostComment(ctx context.Context, cred backend.Credentials, postID int64, req backend.CommentRequest) (*backend.Comment, error)
	UpdatePostComment(ctx context.Context, cred backend.Credentials, id int64, req backend.CommentRequest) (*backend.Comment, error)
	DeletePostComment(ctx context.Context, cred backend.Credentials, id int64) error
}

type PostForm struct {
	BoardID int64  `json:"board_id,omitempty" validate:"omitempty,gt=0"`
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

var postMessages = validation.Messages{
	"board_id":       "게시판이 올바르지 않습니다.",
	"title.required": "제목을 입력해주세요.",
	"title.max":      "제목은 255자 이내로 입력해주세요.",
	"content":        "내용을 입력해주세요.",
}

func (f PostForm) normalize() PostForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Content = strings.TrimSpace(f.Content)
	return f
}

type PostList struct {
	Posts []backend.Post    `json:"posts"`
	Meta  *backend.PageMeta `json:"meta,omitempty"`
}

type Board struct {
	backend BoardBackend
}

func NewBoard(b BoardBackend) *Board {
	return &Board{backend: b}
}

func (s *Board) List(ctx context.Context, board string, params backend.ContentListParams) (*PostList, error) {
	if board = strings.TrimSpace(board); board == "" {
		board = DefaultBoard
	}

	posts, meta, err := s.backend.ListPosts(ctx, board, pageParams(params))
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []backend.Post{}
	}
	return &PostList{Posts: posts, Meta: meta}, nil
}

func (s *Board) Get(ctx context.Context, id int64) (*backend.Post, error) {
	return s.backend.GetPost(ctx, id)
}

func (s *Board) Create(ctx context.Context, cred backend.Credentials, form PostForm) (*backend.Post, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreatePost"),
	)

	form = form.normalize()
	if err := validation.Check(form, msgInvalidPost, postMessages); err != nil {
		return nil, err
	}
	if form.BoardID == 0 {
		form.BoardID = defaultBoardID
	}

	post, err := s.backend.CreatePost(ctx, cred, backend.PostRequest{BoardID: form.BoardID, Title: form.Title, Content: form.Content})
	if err != nil {
		log.Warn("create post failed", zap.Error(err))
		return nil, err
	}

	log.Info("post created", zap.Int64("post_id", post.ID))
	return post, nil
}

func (s *Board) Update(ctx context.Context, cred backend.Credentials, id int64, form PostForm) (*backend.Post, error) {
	form = form.normalize()
	if err := validation.Check(form, msgInvalidPost, postMessages); err != nil {
		return nil, err
	}

	post, err := s.backend.UpdatePost(ctx, cred, id, backend.PostRequest{Title: form.Title, Content: form.Content})
	if err != nil {
		logger.FromCtx(ctx).Warn("update post failed",
			zap.String("layer", "service"),
			zap.Int64("post_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return post, nil
}

func (s *Board) Delete(ctx context.Context, cred backend.Credentials, id int64) error {
	return s.backend.DeletePost(ctx, cred, id)
}

func (s *Board) Comments(ctx context.Context, postID int64) ([]backend.Comment, error) {
	comments, err := s.backend.ListPostComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	return orEmpty(comments), nil
}

func (s *Board) CreateComment(ctx context.Context, cred backend.Credentials, postID int64, form CommentForm) (*backend.Comment, error) {
	req, err := form.request()
	if err != nil {
		return nil, err
	}
	return s.backend.CreatePostComment(ctx, cred, postID, req)
}

func (s *Board) UpdateComment(ctx context.Context, cred backend.Credentials, id int64, form CommentForm) (*backend.Comment, error) {
	form.ParentID = nil
	req, err := form.request()
	if err != nil {
		return nil, err
	}
	return s.backend.UpdatePostComment(ctx, cred, id, req)
}

func (s *Board) DeleteComment(ctx context.Context, cred backend.Credentials, id int64) error {
	return s.backend.DeletePostComment(ctx, cred, id)
}
