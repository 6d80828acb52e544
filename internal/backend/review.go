package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type Review struct {
	ID                 int64   `json:"id"`
	ProductID          int64   `json:"product_id"`
	Rating             int     `json:"rating"`
	Title              string  `json:"title,omitempty"`
	Content            string  `json:"content"`
	Author             *Author `json:"author,omitempty"`
	HelpfulCount       int     `json:"helpful_count"`
	IsVerifiedPurchase bool    `json:"is_verified_purchase"`
	CreatedAt          string  `json:"created_at"`
}

type ReviewStats struct {
	AverageRating float64        `json:"average_rating"`
	TotalCount    int            `json:"total_count"`
	Distribution  map[string]int `json:"rating_distribution,omitempty"`
}

type ReviewList struct {
	Reviews []Review     `json:"reviews"`
	Stats   *ReviewStats `json:"stats,omitempty"`
	Meta    *PageMeta    `json:"meta,omitempty"`
}

type ReviewListParams struct {
	Page    int
	PerPage int
	Rating  int
	Sort    string
}

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

type ReviewEligibility struct {
	CanReview bool   `json:"can_review"`
	Reason    string `json:"reason,omitempty"`
}

type HelpfulResult struct {
	HelpfulCount int `json:"helpful_count"`
}

func (p ReviewListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Rating > 0 {
		q.Set("rating", strconv.Itoa(p.Rating))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	return q
}

func productReviewsPath(slug string) string {
	return "/shop/products/" + url.PathEscape(slug) + "/reviews"
}

func reviewPath(id int64) string {
	return "/shop/reviews/" + strconv.FormatInt(id, 10)
}

func (c *Client) ProductReviews(ctx context.Context, slug string, params ReviewListParams) (*ReviewList, error) {
	var list ReviewList
	env, err := c.do(ctx, "review.list", http.MethodGet, productReviewsPath(slug), Credentials{}, params.query(), nil, &list)
	if err != nil {
		return nil, err
	}
	if list.Meta == nil {
		list.Meta = env.Meta
	}
	return &list, nil
}

func (c *Client) CanReview(ctx context.Context, cred Credentials, slug string) (*ReviewEligibility, error) {
	var res ReviewEligibility
	if _, err := c.do(ctx, "review.can_review", http.MethodGet, productReviewsPath(slug)+"/can-review", cred, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateReview(ctx context.Context, cred Credentials, slug string, req ReviewRequest) (*Review, error) {
	var review Review
	if _, err := c.do(ctx, "review.create", http.MethodPost, productReviewsPath(slug), cred, nil, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) UpdateReview(ctx context.Context, cred Credentials, id int64, req ReviewRequest) (*Review, error) {
	var review Review
	if _, err := c.do(ctx, "review.update", http.MethodPut, reviewPath(id), cred, nil, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) DeleteReview(ctx context.Context, cred Credentials, id int64) error {
	_, err := c.do(ctx, "review.delete", http.MethodDelete, reviewPath(id), cred, nil, nil, nil)
	return err
}

func (c *Client) MarkReviewHelpful(ctx context.Context, cred Credentials, id int64) (*HelpfulResult, error) {
	var res HelpfulResult
	if _, err := c.do(ctx, "review.helpful", http.MethodPost, reviewPath(id)+"/helpful", cred, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) MyReviews(ctx context.Context, cred Credentials, params ReviewListParams) ([]Review, *PageMeta, error) {
	var reviews []Review
	env, err := c.do(ctx, "review.mine", http.MethodGet, "/shop/my/reviews", cred, params.query(), nil, &reviews)
	if err != nil {
		return nil, nil, err
	}
	return reviews, env.Meta, nil
}
