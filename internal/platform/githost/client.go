package githost

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"github.com/arminmzh/storeforge-backend/internal/config"
	"github.com/arminmzh/storeforge-backend/internal/platform"
	"go.uber.org/zap"
)

// Repository is the result of generating a tenant storefront repo from
// the template.
type Repository struct {
	Name string
	URL  string
}

type Client struct {
	cfg        config.GitHost
	httpClient *http.Client
	logger     *zap.Logger
}

func New(cfg config.GitHost, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type generateRepoRequest struct {
	Owner   string `json:"owner"`
	Name    string `json:"name"`
	Private bool   `json:"private"`
}

type generateRepoResponse struct {
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// CreateFromTemplate copies the configured template repository into a
// fresh repository for the tenant.
func (c *Client) CreateFromTemplate(ctx context.Context, name string) (*Repository, error) {
	reqURL := fmt.Sprintf(
		"%s/repos/%s/%s/generate",
		c.cfg.BaseURL, c.cfg.Owner, c.cfg.TemplateRepo,
	)

	var resp generateRepoResponse
	err := platform.DoJSON(
		ctx, c.httpClient, http.MethodPost, reqURL, c.cfg.Token,
		generateRepoRequest{Owner: c.cfg.Owner, Name: name, Private: false},
		&resp,
	)
	if err != nil {
		return nil, err
	}

	c.logger.Info("created repository from template",
		zap.String("repo", resp.Name),
		zap.String("url", resp.HTMLURL),
	)

	return &Repository{Name: resp.Name, URL: resp.HTMLURL}, nil
}

type commitFileRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
}

// CommitFile writes a single file into the repository; content is
// base64-encoded per the git-hosting contents API.
func (c *Client) CommitFile(ctx context.Context, repoName, path string, content []byte, message string) error {
	reqURL := fmt.Sprintf(
		"%s/repos/%s/%s/contents/%s",
		c.cfg.BaseURL, c.cfg.Owner, repoName, url.PathEscape(path),
	)

	return platform.DoJSON(
		ctx, c.httpClient, http.MethodPut, reqURL, c.cfg.Token,
		commitFileRequest{
			Message: message,
			Content: base64.StdEncoding.EncodeToString(content),
		},
		nil,
	)
}

// DeleteRepo removes a tenant repository. Used as the compensation for
// CreateFromTemplate when a later provisioning step fails.
func (c *Client) DeleteRepo(ctx context.Context, repoName string) error {
	reqURL := fmt.Sprintf("%s/repos/%s/%s", c.cfg.BaseURL, c.cfg.Owner, repoName)

	return platform.DoJSON(ctx, c.httpClient, http.MethodDelete, reqURL, c.cfg.Token, nil, nil)
}
