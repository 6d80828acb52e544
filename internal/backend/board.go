package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Post is a community board post.
type Post struct {
	ID           int64   `json:"id"`
	BoardID      int64   `json:"board_id"`
	Title        string  `json:"title"`
	Content      string  `json:"content,omitempty"`
	Author       *Author `json:"author,omitempty"`
	ViewCount    int     `json:"view_count"`
	CommentCount int     `json:"comment_count"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

type PostRequest struct {
	BoardID int64  `json:"board_id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Comment is shared by board posts and blog posts. Replies are nested one
// level under their parent.
type Comment struct {
	ID        int64     `json:"id"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	Content   string    `json:"content"`
	Author    *Author   `json:"author,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at,omitempty"`
	Replies   []Comment `json:"replies,omitempty"`
}

type CommentRequest struct {
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// ContentListParams pages board and blog listings.
type ContentListParams struct {
	Page     int
	PerPage  int
	Search   string
	Category string
	Tag      string
}

func (p ContentListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Tag != "" {
		q.Set("tag", p.Tag)
	}
	return q
}

func postPath(id int64) string {
	return "/boards/posts/" + strconv.FormatInt(id, 10)
}

func (c *Client) ListPosts(ctx context.Context, board string, params ContentListParams) ([]Post, *PageMeta, error) {
	var posts []Post
	env, err := c.do(ctx, "board.list_posts", http.MethodGet, "/boards/"+url.PathEscape(board)+"/posts", Credentials{}, params.query(), nil, &posts)
	if err != nil {
		return nil, nil, err
	}
	return posts, env.Meta, nil
}

func (c *Client) GetPost(ctx context.Context, id int64) (*Post, error) {
	var post Post
	if _, err := c.do(ctx, "board.get_post", http.MethodGet, postPath(id), Credentials{}, nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreatePost(ctx context.Context, cred Credentials, req PostRequest) (*Post, error) {
	var post Post
	if _, err := c.do(ctx, "board.create_post", http.MethodPost, "/boards/posts", cred, nil, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdatePost(ctx context.Context, cred Credentials, id int64, req PostRequest) (*Post, error) {
	var post Post
	if _, err := c.do(ctx, "board.update_post", http.MethodPut, postPath(id), cred, nil, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, cred Credentials, id int64) error {
	_, err := c.do(ctx, "board.delete_post", http.MethodDelete, postPath(id), cred, nil, nil, nil)
	return err
}

func (c *Client) ListPostComments(ctx context.Context, postID int64) ([]Comment, error) {
	var comments []Comment
	if _, err := c.do(ctx, "board.list_comments", http.MethodGet, postPath(postID)+"/comments", Credentials{}, nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) CreatePostComment(ctx context.Context, cred Credentials, postID int64, req CommentRequest) (*Comment, error) {
	var comment Comment
	if _, err := c.do(ctx, "board.create_comment", http.MethodPost, postPath(postID)+"/comments", cred, nil, req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) UpdatePostComment(ctx context.Context, cred Credentials, id int64, req CommentRequest) (*Comment, error) {
	var comment Comment
	path := "/boards/comments/" + strconv.FormatInt(id, 10)
	if _, err := c.do(ctx, "board.update_comment", http.MethodPut, path, cred, nil, req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) DeletePostComment(ctx context.Context, cred Credentials, id int64) error {
	path := "/boards/comments/" + strconv.FormatInt(id, 10)
	_, err := c.do(ctx, "board.delete_comment", http.MethodDelete, path, cred, nil, nil, nil)
	return err
}
