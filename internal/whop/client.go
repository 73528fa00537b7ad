package whop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/IsaacDSC/trendforge/pkg/httpclient"
	"github.com/IsaacDSC/trendforge/pkg/retry"
)

const (
	DefaultBaseURL     = "https://api.whop.com"
	maxInlineContent   = 5000
	contentSeparator   = "\n\n---\n\n"
	productURLFallback = "https://whop.com/products/%s"
	postURLFallback    = "https://whop.com/communities/%s/posts/%s"
)

// InvalidID is returned before any request when a store, community or product id cannot be a
// single path segment.
var InvalidID = errors.New("invalid whop id")

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

type Product struct {
	Name        string
	Description string
	Content     string
	PriceUSD    int
	Tags        []string
}

type ProductResult struct {
	ProductID  string `json:"product_id"`
	ProductURL string `json:"product_url"`
}

type Post struct {
	Title   string
	Content string
}

type PostResult struct {
	PostID  string `json:"post_id"`
	PostURL string `json:"post_url"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retryOpts  []retry.Option
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithRetry(opts ...retry.Option) Option {
	return func(c *Client) {
		c.retryOpts = append(c.retryOpts, opts...)
	}
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: httpclient.NewHTTPClientWithLogging(30*time.Second, false),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// resource is the Whop response shape; some endpoints nest the object under "data".
type resource struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Data *struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"data"`
}

func (r resource) id() string {
	if r.ID == "" && r.Data != nil {
		return r.Data.ID
	}
	return r.ID
}

func (r resource) url() string {
	if r.URL == "" && r.Data != nil {
		return r.Data.URL
	}
	return r.URL
}

// CreateProduct creates a digital product in storeID and then uploads Content as a markdown file.
// A failed upload is logged and does not fail the call, the product already exists.
func (c *Client) CreateProduct(ctx context.Context, storeID string, p Product) (ProductResult, error) {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	body, err := json.Marshal(map[string]any{
		"name":        p.Name,
		"description": p.Description + contentSeparator + truncate(p.Content, maxInlineContent),
		"type":        "digital",
		"price":       p.PriceUSD,
		"tags":        tags,
	})
	if err != nil {
		return ProductResult{}, fmt.Errorf("whop: marshal product: %w", err)
	}

	path, err := apiPath("/api/v2/stores/%s/products", storeID)
	if err != nil {
		return ProductResult{}, fmt.Errorf("whop: create product: %w", err)
	}

	var res resource
	if err := c.postJSON(ctx, path, body, &res); err != nil {
		return ProductResult{}, fmt.Errorf("whop: create product: %w", err)
	}

	id := res.id()
	if p.Content != "" && id != "" {
		if err := c.uploadContent(ctx, storeID, id, p.Name, p.Content); err != nil {
			ctxlogger.GetLogger(ctx).Warn("content file upload failed, product was created", "product_id", id, "error", err)
		}
	}

	u := res.url()
	if u == "" {
		u = fmt.Sprintf(productURLFallback, url.PathEscape(id))
	}

	return ProductResult{ProductID: id, ProductURL: u}, nil
}

// CreateDraftPost creates a draft announcement in communityID.
func (c *Client) CreateDraftPost(ctx context.Context, communityID string, p Post) (PostResult, error) {
	body, err := json.Marshal(map[string]string{
		"title":   p.Title,
		"content": p.Content,
		"status":  "draft",
	})
	if err != nil {
		return PostResult{}, fmt.Errorf("whop: marshal post: %w", err)
	}

	path, err := apiPath("/api/v2/communities/%s/posts", communityID)
	if err != nil {
		return PostResult{}, fmt.Errorf("whop: create draft post: %w", err)
	}

	var res resource
	if err := c.postJSON(ctx, path, body, &res); err != nil {
		return PostResult{}, fmt.Errorf("whop: create draft post: %w", err)
	}

	id := res.id()
	u := res.url()
	if u == "" {
		u = fmt.Sprintf(postURLFallback, url.PathEscape(communityID), url.PathEscape(id))
	}

	return PostResult{PostID: id, PostURL: u}, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body []byte, out any) error {
	return c.do(ctx, path, "application/json", body, out)
}

func (c *Client) do(ctx context.Context, path, contentType string, body []byte, out any) error {
	resp, err := retry.DoHTTP(ctx, c.httpClient, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", contentType)
		return req, nil
	}, c.retryOpts...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &retry.StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(b)),
		}
	}

	if out == nil || len(b) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) uploadContent(ctx context.Context, storeID, productID, name, content string) error {
	path, err := apiPath("/api/v2/stores/%s/products/%s/files", storeID, productID)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, SafeFileName(name)))
	h.Set("Content-Type", "text/markdown")

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(part, content); err != nil {
		return err
	}

	if err := w.WriteField("product_id", productID); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	return c.do(ctx, path, w.FormDataContentType(), buf.Bytes(), nil)
}

// apiPath fills format with path-escaped ids. Empty and dot ids are rejected since they would
// address a different endpoint.
func apiPath(format string, ids ...string) (string, error) {
	args := make([]any, len(ids))
	for i, id := range ids {
		if strings.TrimSpace(id) == "" || id == "." || id == ".." {
			return "", fmt.Errorf("%w: %q", InvalidID, id)
		}
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...), nil
}

// SafeFileName replaces every non-alphanumeric character with "_" and appends ".md".
func SafeFileName(name string) string {
	return unsafeFileChars.ReplaceAllString(name, "_") + ".md"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
