// Package wordpress implements the publish sink against the WP REST API.
package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"NewsBridge/internal/domain"
	"NewsBridge/internal/ports"
)

const defaultTimeout = 30 * time.Second

// Client talks to a WordPress install via the wp/v2 REST routes using
// application-password basic auth.
type Client struct {
	defaults domain.Credentials
	client   *http.Client
}

var _ ports.Publisher = (*Client)(nil)

// New builds a client with process-wide default credentials. Per-call
// credentials override them entirely when present.
func New(defaults domain.Credentials, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{defaults: defaults, client: client}
}

func (c *Client) resolve(creds domain.Credentials) domain.Credentials {
	if creds.IsZero() {
		creds = c.defaults
	}
	if creds.PostStatus == "" {
		creds.PostStatus = "publish"
	}
	return creds
}

func authHeader(creds domain.Credentials) string {
	token := base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.AppPassword))
	return "Basic " + token
}

func endpoint(creds domain.Credentials, path string) string {
	return strings.TrimRight(creds.BaseURL, "/") + "/wp-json/wp/v2/" + path
}

// UploadImage downloads the source image and pushes it into the WP media
// library, returning the media ID. Callers treat any error as "publish
// without a featured image".
func (c *Client) UploadImage(ctx context.Context, imageURL, filename string, creds domain.Credentials) (int64, error) {
	creds = c.resolve(creds)

	imgReq, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build image request: %w", err)
	}
	imgResp, err := c.client.Do(imgReq)
	if err != nil {
		return 0, fmt.Errorf("download image: %w", err)
	}
	defer imgResp.Body.Close()

	if imgResp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download image: unexpected status %s", imgResp.Status)
	}
	data, err := io.ReadAll(imgResp.Body)
	if err != nil {
		return 0, fmt.Errorf("read image: %w", err)
	}

	contentType := imgResp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint(creds, "media"), bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("build media request: %w", err)
	}
	req.Header.Set("Authorization", authHeader(creds))
	req.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	req.Header.Set("Content-Type", contentType)

	var media struct {
		ID int64 `json:"id"`
	}
	if err := c.do(req, &media); err != nil {
		return 0, fmt.Errorf("upload media: %w", err)
	}
	return media.ID, nil
}

// CreatePost resolves the category and creates the post, returning the
// remote post ID.
func (c *Client) CreatePost(ctx context.Context, post domain.Post, creds domain.Credentials) (int64, error) {
	creds = c.resolve(creds)

	categoryID, err := c.getOrCreateCategory(ctx, creds, string(post.Category))
	if err != nil {
		return 0, fmt.Errorf("resolve category %s: %w", post.Category, err)
	}

	payload := map[string]any{
		"title":      post.Title,
		"content":    post.Body,
		"status":     creds.PostStatus,
		"categories": []int64{categoryID},
	}
	if post.FeaturedMediaID > 0 {
		payload["featured_media"] = post.FeaturedMediaID
	}
	if post.SourceURL != "" {
		payload["meta"] = map[string]string{"source_url": post.SourceURL}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal post payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint(creds, "posts"), bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build post request: %w", err)
	}
	req.Header.Set("Authorization", authHeader(creds))
	req.Header.Set("Content-Type", "application/json")

	var created struct {
		ID int64 `json:"id"`
	}
	if err := c.do(req, &created); err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	return created.ID, nil
}

// getOrCreateCategory searches for an existing category by name and creates
// it when absent. Name comparison is case-insensitive.
func (c *Client) getOrCreateCategory(ctx context.Context, creds domain.Credentials, name string) (int64, error) {
	searchURL := endpoint(creds, "categories") + "?search=" + url.QueryEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build category search: %w", err)
	}
	req.Header.Set("Authorization", authHeader(creds))

	var categories []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := c.do(req, &categories); err != nil {
		return 0, fmt.Errorf("search categories: %w", err)
	}
	for _, category := range categories {
		if strings.EqualFold(category.Name, name) {
			return category.ID, nil
		}
	}

	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return 0, fmt.Errorf("marshal category payload: %w", err)
	}
	createReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint(creds, "categories"), bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build category create: %w", err)
	}
	createReq.Header.Set("Authorization", authHeader(creds))
	createReq.Header.Set("Content-Type", "application/json")

	var created struct {
		ID int64 `json:"id"`
	}
	if err := c.do(createReq, &created); err != nil {
		return 0, fmt.Errorf("create category: %w", err)
	}
	return created.ID, nil
}

func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("wordpress error %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
