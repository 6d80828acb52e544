// Package community passes board and blog reads and writes through to the
// backend. Writes are validated locally before any network call.
package community

import (
	"strings"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/validation"
)

const (
	defaultPerPage = 10
	maxPerPage     = 50

	msgInvalidComment = "댓글 내용을 확인해주세요."
)

// CommentForm is a new comment or an edit of one. ParentID is only honoured
// on create.
type CommentForm struct {
	Content  string `json:"content" validate:"required,max=2000"`
	ParentID *int64 `json:"parent_id,omitempty" validate:"omitempty,gt=0"`
}

var commentMessages = validation.Messages{
	"content.required": "댓글 내용을 입력해주세요.",
	"content.max":      "댓글은 2000자 이내로 입력해주세요.",
	"parent_id":        "답글 대상이 올바르지 않습니다.",
}

func (f CommentForm) request() (backend.CommentRequest, error) {
	f.Content = strings.TrimSpace(f.Content)
	if err := validation.Check(f, msgInvalidComment, commentMessages); err != nil {
		return backend.CommentRequest{}, err
	}
	return backend.CommentRequest{Content: f.Content, ParentID: f.ParentID}, nil
}

func pageParams(p backend.ContentListParams) backend.ContentListParams {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 || p.PerPage > maxPerPage {
		p.PerPage = defaultPerPage
	}
	p.Search = strings.TrimSpace(p.Search)
	return p
}

func orEmpty(c []backend.Comment) []backend.Comment {
	if c == nil {
		return []backend.Comment{}
	}
	return c
}
