package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type BlogCategory struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	PostsCount int    `json:"posts_count"`
}

type BlogTag struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	PostsCount int    `json:"posts_count"`
}

type BlogPost struct {
	ID          int64         `json:"id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Excerpt     string        `json:"excerpt,omitempty"`
	Content     string        `json:"content,omitempty"`
	Thumbnail   string        `json:"thumbnail,omitempty"`
	Category    *BlogCategory `json:"category,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Author      *Author       `json:"author,omitempty"`
	IsFeatured  bool          `json:"is_featured"`
	ViewCount   int           `json:"view_count"`
	PublishedAt string        `json:"published_at,omitempty"`
}

func blogPath(slug string) string {
	return "/blog/" + url.PathEscape(slug)
}

func (c *Client) ListBlogPosts(ctx context.Context, params ContentListParams) ([]BlogPost, *PageMeta, error) {
	var posts []BlogPost
	env, err := c.do(ctx, "blog.list", http.MethodGet, "/blog", Credentials{}, params.query(), nil, &posts)
	if err != nil {
		return nil, nil, err
	}
	return posts, env.Meta, nil
}

func (c *Client) GetBlogPost(ctx context.Context, slug string) (*BlogPost, error) {
	var post BlogPost
	if _, err := c.do(ctx, "blog.get", http.MethodGet, blogPath(slug), Credentials{}, nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) BlogCategories(ctx context.Context) ([]BlogCategory, error) {
	var categories []BlogCategory
	if _, err := c.do(ctx, "blog.categories", http.MethodGet, "/blog/categories", Credentials{}, nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) BlogTags(ctx context.Context) ([]BlogTag, error) {
	var tags []BlogTag
	if _, err := c.do(ctx, "blog.tags", http.MethodGet, "/blog/tags", Credentials{}, nil, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) FeaturedBlogPosts(ctx context.Context, limit int) ([]BlogPost, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var posts []BlogPost
	if _, err := c.do(ctx, "blog.featured", http.MethodGet, "/blog/featured", Credentials{}, q, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) ListBlogComments(ctx context.Context, slug string) ([]Comment, error) {
	var comments []Comment
	if _, err := c.do(ctx, "blog.list_comments", http.MethodGet, blogPath(slug)+"/comments", Credentials{}, nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) CreateBlogComment(ctx context.Context, cred Credentials, slug string, req CommentRequest) (*Comment, error) {
	var comment Comment
	if _, err := c.do(ctx, "blog.create_comment", http.MethodPost, blogPath(slug)+"/comments", cred, nil, req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) UpdateBlogComment(ctx context.Context, cred Credentials, id int64, req CommentRequest) (*Comment, error) {
	var comment Comment
	path := "/comments/" + strconv.FormatInt(id, 10)
	if _, err := c.do(ctx, "blog.update_comment", http.MethodPut, path, cred, nil, req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) DeleteBlogComment(ctx context.Context, cred Credentials, id int64) error {
	path := "/comments/" + strconv.FormatInt(id, 10)
	_, err := c.do(ctx, "blog.delete_comment", http.MethodDelete, path, cred, nil, nil, nil)
	return err
}
