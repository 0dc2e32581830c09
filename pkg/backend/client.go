package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/ctrlbits/ctrlbits-site/pkg/models"
)

// Client talks to the ctrlbits REST backend. All endpoints are public
// reads; no auth headers are attached. One fetch per call, no retry,
// no caching.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(20 * time.Second)
	return &Client{http: c}
}

// Projects fetches the full project collection (first page).
func (c *Client) Projects(ctx context.Context) (*models.ProjectsResponse, error) {
	var out models.ProjectsResponse
	if err := c.get(ctx, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProjectBySlug fetches a single project. The slug may also be the
// project's numeric id. Returns ErrNotFound on a backend 404.
func (c *Client) ProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var out models.Project
	if err := c.get(ctx, "/projects/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProjectsByCategory asks the backend to filter server-side. The list
// view only uses this when server-side filtering is enabled; the
// default flow filters the full collection locally.
func (c *Client) ProjectsByCategory(ctx context.Context, category string) (*models.ProjectsResponse, error) {
	var out models.ProjectsResponse
	if err := c.get(ctx, "/projects", map[string]string{"category": category}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FeaturedProjects is the server-side counterpart of the featured lens.
func (c *Client) FeaturedProjects(ctx context.Context) (*models.ProjectsResponse, error) {
	var out models.ProjectsResponse
	if err := c.get(ctx, "/projects", map[string]string{"featured": "true"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Team(ctx context.Context) (*models.TeamResponse, error) {
	var out models.TeamResponse
	if err := c.get(ctx, "/team", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Testimonials(ctx context.Context) (*models.TestimonialsResponse, error) {
	var out models.TestimonialsResponse
	if err := c.get(ctx, "/testimonials", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Companies(ctx context.Context) (*models.CompaniesResponse, error) {
	var out models.CompaniesResponse
	if err := c.get(ctx, "/companies", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Tech(ctx context.Context) (models.TechData, error) {
	var out models.TechData
	if err := c.get(ctx, "/tech", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if resp.IsError() {
		if resp.StatusCode() == http.StatusNotFound {
			return ErrNotFound
		}
		return &StatusError{Code: resp.StatusCode(), Body: snippet(resp.Body())}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
