package backend

import (
	"context"
	"net/http"
	"net/url"
)

// FormField describes one input of a backend-defined form.
type FormField struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type Form struct {
	ID               int64       `json:"id"`
	Slug             string      `json:"slug"`
	Name             string      `json:"name"`
	Description      string      `json:"description,omitempty"`
	Fields           []FormField `json:"fields"`
	SubmitButtonText string      `json:"submit_button_text,omitempty"`
	SuccessMessage   string      `json:"success_message,omitempty"`
}

type FormSubmission struct {
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"`
}

func (c *Client) GetForm(ctx context.Context, slug string) (*Form, error) {
	var form Form
	if _, err := c.do(ctx, "form.get", http.MethodGet, "/forms/"+url.PathEscape(slug), Credentials{}, nil, nil, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (c *Client) SubmitForm(ctx context.Context, cred Credentials, slug string, data map[string]any) (*FormSubmission, error) {
	var sub FormSubmission
	path := "/forms/" + url.PathEscape(slug) + "/submit"
	if _, err := c.do(ctx, "form.submit", http.MethodPost, path, cred, nil, data, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
