package community

import (
	"context"
	"strings"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cache"
	"storefront-gateway/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultFeatured = 5
	maxFeatured     = 20
)

type BlogBackend interface {
	ListBlogPosts(ctx context.Context, params backend.ContentListParams) ([]backend.BlogPost, *backend.PageMeta, error)
	GetBlogPost(ctx context.Context, slug string) (*backend.BlogPost, error)
	BlogCategories(ctx context.Context) ([]backend.BlogCategory, error)
	BlogTags(ctx context.Context) ([]backend.BlogTag, error)
	FeaturedBlogPosts(ctx context.Context, limit int) ([]backend.BlogPost, error)
	ListBlogComments(ctx context.Context, slug string) ([]backend.Comment, error)
	CreateBlogComment(ctx context.Context, cred backend.Credentials, slug string, req backend.CommentRequest) (*backend.Comment, error)
	UpdateBlogComment(ctx context.Context, cred backend.Credentials, id int64, req backend.CommentRequest) (*backend.Comment, error)
	DeleteBlogComment(ctx context.Context, cred backend.Credentials, id int64) error
}

type BlogList struct {
	Posts []backend.BlogPost `json:"posts"`
	Meta  *backend.PageMeta  `json:"meta,omitempty"`
}

type Blog struct {
	backend    BlogBackend
	categories *cache.Cache[string, []backend.BlogCategory]
	tags       *cache.Cache[string, []backend.BlogTag]
}

func NewBlog(b BlogBackend) *Blog {
	return &Blog{
		backend:    b,
		categories: cache.New[string, []backend.BlogCategory](1, cache.TaxonomyTTL),
		tags:       cache.New[string, []backend.BlogTag](1, cache.TaxonomyTTL),
	}
}

func (s *Blog) List(ctx context.Context, params backend.ContentListParams) (*BlogList, error) {
	params = pageParams(params)
	params.Category = strings.TrimSpace(params.Category)
	params.Tag = strings.TrimSpace(params.Tag)

	posts, meta, err := s.backend.ListBlogPosts(ctx, params)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []backend.BlogPost{}
	}
	return &BlogList{Posts: posts, Meta: meta}, nil
}

func (s *Blog) Get(ctx context.Context, slug string) (*backend.BlogPost, error) {
	return s.backend.GetBlogPost(ctx, slug)
}

// Categories never fails: the sidebar renders without them.
func (s *Blog) Categories(ctx context.Context) []backend.BlogCategory {
	v, _, err := s.categories.GetOrLoad("categories", func() ([]backend.BlogCategory, error) {
		return s.backend.BlogCategories(ctx)
	})
	if err != nil {
		logger.FromCtx(ctx).Warn("blog categories unavailable", zap.String("layer", "service"), zap.Error(err))
		return []backend.BlogCategory{}
	}
	if v == nil {
		return []backend.BlogCategory{}
	}
	return v
}

// Tags never fails, like Categories.
func (s *Blog) Tags(ctx context.Context) []backend.BlogTag {
	v, _, err := s.tags.GetOrLoad("tags", func() ([]backend.BlogTag, error) {
		return s.backend.BlogTags(ctx)
	})
	if err != nil {
		logger.FromCtx(ctx).Warn("blog tags unavailable", zap.String("layer", "service"), zap.Error(err))
		return []backend.BlogTag{}
	}
	if v == nil {
		return []backend.BlogTag{}
	}
	return v
}

func (s *Blog) Featured(ctx context.Context, limit int) ([]backend.BlogPost, error) {
	if limit <= 0 || limit > maxFeatured {
		limit = defaultFeatured
	}
	posts, err := s.backend.FeaturedBlogPosts(ctx, limit)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []backend.BlogPost{}
	}
	return posts, nil
}

func (s *Blog) Comments(ctx context.Context, slug string) ([]backend.Comment, error) {
	comments, err := s.backend.ListBlogComments(ctx, slug)
	if err != nil {
		return nil, err
	}
	return orEmpty(comments), nil
}

func (s *Blog) CreateComment(ctx context.Context, cred backend.Credentials, slug string, form CommentForm) (*backend.Comment, error) {
	req, err := form.request()
	if err != nil {
		return nil, err
	}
	return s.backend.CreateBlogComment(ctx, cred, slug, req)
}

func (s *Blog) UpdateComment(ctx context.Context, cred backend.Credentials, id int64, form CommentForm) (*backend.Comment, error) {
	form.ParentID = nil
	req, err := form.request()
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateBlogComment(ctx, cred, id, req)
}

func (s *Blog) DeleteComment(ctx context.Context, cred backend.Credentials, id int64) error {
	return s.backend.DeleteBlogComment(ctx, cred, id)
}
