package deploy

import (
	"context"
	"fmt"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/config"
	"github.com/arminmzh/storeforge-backend/internal/platform"
	"go.uber.org/zap"
)

// Deployment is a storefront running on the hosting platform.
type Deployment struct {
	ProjectID string
	URL       string
}

type EnvVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Client struct {
	cfg        config.Deploy
	httpClient *http.Client
	logger     *zap.Logger
}

func New(cfg config.Deploy, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type createProjectRequest struct {
	Name    string `json:"name"`
	RepoURL string `json:"repoUrl"`
}

type createProjectResponse struct {
	ProjectID string `json:"projectId"`
	URL       string `json:"url"`
}

// CreateProject imports the repository and triggers the first
// deployment, returning the platform project id and the live URL.
func (c *Client) CreateProject(ctx context.Context, name, repoURL string) (*Deployment, error) {
	reqURL := fmt.Sprintf("%s/projects", c.cfg.BaseURL)

	var resp createProjectResponse
	err := platform.DoJSON(
		ctx, c.httpClient, http.MethodPost, reqURL, c.cfg.Token,
		createProjectRequest{Name: name, RepoURL: repoURL},
		&resp,
	)
	if err != nil {
		return nil, err
	}

	c.logger.Info("created deployment project",
		zap.String("project_id", resp.ProjectID),
		zap.String("url", resp.URL),
	)

	return &Deployment{ProjectID: resp.ProjectID, URL: resp.URL}, nil
}

type setEnvRequest struct {
	Variables []EnvVar `json:"variables"`
}

// SetEnv registers environment variables on the deployed project.
func (c *Client) SetEnv(ctx context.Context, projectID string, vars []EnvVar) error {
	reqURL := fmt.Sprintf("%s/projects/%s/env", c.cfg.BaseURL, projectID)

	return platform.DoJSON(
		ctx, c.httpClient, http.MethodPost, reqURL, c.cfg.Token,
		setEnvRequest{Variables: vars},
		nil,
	)
}

// DeleteProject tears down a deployment. Used as the compensation for
// CreateProject.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	reqURL := fmt.Sprintf("%s/projects/%s", c.cfg.BaseURL, projectID)

	return platform.DoJSON(ctx, c.httpClient, http.MethodDelete, reqURL, c.cfg.Token, nil, nil)
}
