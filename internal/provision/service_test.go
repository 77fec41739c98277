package provision

import (
	"context"
	"errors"
	"testing"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/platform/deploy"
	"github.com/arminmzh/storeforge-backend/internal/platform/githost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGitHost struct {
	failCreate bool
	failCommit bool

	calls []string
}

func (s *stubGitHost) CreateFromTemplate(ctx context.Context, name string) (*githost.Repository, error) {
	s.calls = append(s.calls, "CreateFromTemplate")
	if s.failCreate {
		return nil, errors.New("repo host is down")
	}

	return &githost.Repository{
		Name: name,
		URL:  "https://github.com/storeforge/" + name,
	}, nil
}

func (s *stubGitHost) CommitFile(ctx context.Context, repoName, path string, content []byte, message string) error {
	s.calls = append(s.calls, "CommitFile")
	if s.failCommit {
		return errors.New("commit rejected")
	}

	return nil
}

func (s *stubGitHost) DeleteRepo(ctx context.Context, repoName string) error {
	s.calls = append(s.calls, "DeleteRepo")
	return nil
}

type stubDeployer struct {
	failCreate bool
	failSetEnv bool

	calls   []string
	envVars []deploy.EnvVar
}

func (s *stubDeployer) CreateProject(ctx context.Context, name, repoURL string) (*deploy.Deployment, error) {
	s.calls = append(s.calls, "CreateProject")
	if s.failCreate {
		return nil, errors.New("deployment failed")
	}

	return &deploy.Deployment{
		ProjectID: "prj_123",
		URL:       "https://" + name + ".deploy.app",
	}, nil
}

func (s *stubDeployer) SetEnv(ctx context.Context, projectID string, vars []deploy.EnvVar) error {
	s.calls = append(s.calls, "SetEnv")
	s.envVars = vars
	if s.failSetEnv {
		return errors.New("env registration failed")
	}

	return nil
}

func (s *stubDeployer) DeleteProject(ctx context.Context, projectID string) error {
	s.calls = append(s.calls, "DeleteProject")
	return nil
}

type stubAttempts struct {
	attempt    Attempt
	stepsDone  []string
	status     string
	failedStep string
}

func (s *stubAttempts) Create(ctx context.Context, attempt Attempt) (*Attempt, error) {
	attempt.ID = "attempt-1"
	s.attempt = attempt
	return &attempt, nil
}

func (s *stubAttempts) MarkStep(ctx context.Context, id string, stepName string, state State) error {
	s.stepsDone = append(s.stepsDone, stepName)
	return nil
}

func (s *stubAttempts) Finish(ctx context.Context, id string, status string, failedStep string) error {
	s.status = status
	s.failedStep = failedStep
	return nil
}

func newTestService(gitHost *stubGitHost, deployer *stubDeployer, attempts *stubAttempts) *service {
	return New(gitHost, deployer, attempts, EnvVars{
		MongoURI:     "mongodb://localhost:27017",
		JWTSecret:    "secret",
		PublicAPIURL: "https://api.storeforge.app",
		GitHostToken: "token",
	}, zap.NewNop())
}

func TestProvisionSuccess(t *testing.T) {
	gitHost := &stubGitHost{}
	deployer := &stubDeployer{}
	attempts := &stubAttempts{}

	result, err := newTestService(gitHost, deployer, attempts).
		Provision(context.Background(), "store-1", "demo-shop")

	require.NoError(t, err)
	assert.Equal(t, "demo-shop", result.RepoName)
	assert.Equal(t, "https://github.com/storeforge/demo-shop", result.RepoURL)
	assert.Contains(t, result.DeployURL, result.RepoName)

	assert.Equal(t, StatusSucceeded, attempts.status)
	assert.Equal(t,
		[]string{StepCreateRepo, StepSeedStoreID, StepDeploy, StepRegisterEnv},
		attempts.stepsDone,
	)

	require.Len(t, deployer.envVars, 4)
	assert.Equal(t, "MONGO_URI", deployer.envVars[0].Key)
}

func TestProvisionDeployFailureCompensatesRepo(t *testing.T) {
	gitHost := &stubGitHost{}
	deployer := &stubDeployer{failCreate: true}
	attempts := &stubAttempts{}

	result, err := newTestService(gitHost, deployer, attempts).
		Provision(context.Background(), "store-1", "demo-shop")

	require.Error(t, err)
	assert.Nil(t, result)

	var upstreamErr *apperror.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, StepDeploy, upstreamErr.Step)

	// the repo created in step 1 must be torn down; the project was
	// never created so DeleteProject must not run
	assert.Equal(t,
		[]string{"CreateFromTemplate", "CommitFile", "DeleteRepo"},
		gitHost.calls,
	)
	assert.Equal(t, []string{"CreateProject"}, deployer.calls)

	assert.Equal(t, StatusCompensated, attempts.status)
	assert.Equal(t, StepDeploy, attempts.failedStep)
}

func TestProvisionEnvFailureCompensatesInReverse(t *testing.T) {
	gitHost := &stubGitHost{}
	deployer := &stubDeployer{failSetEnv: true}
	attempts := &stubAttempts{}

	_, err := newTestService(gitHost, deployer, attempts).
		Provision(context.Background(), "store-1", "demo-shop")

	require.Error(t, err)

	// deployment is deleted before the repository
	assert.Equal(t,
		[]string{"CreateProject", "SetEnv", "DeleteProject"},
		deployer.calls,
	)
	assert.Equal(t,
		[]string{"CreateFromTemplate", "CommitFile", "DeleteRepo"},
		gitHost.calls,
	)

	assert.Equal(t, StatusCompensated, attempts.status)
	assert.Equal(t, StepRegisterEnv, attempts.failedStep)
}

func TestProvisionRepoFailureNeedsNoCompensation(t *testing.T) {
	gitHost := &stubGitHost{failCreate: true}
	deployer := &stubDeployer{}
	attempts := &stubAttempts{}

	_, err := newTestService(gitHost, deployer, attempts).
		Provision(context.Background(), "store-1", "demo-shop")

	require.Error(t, err)
	assert.Equal(t, []string{"CreateFromTemplate"}, gitHost.calls)
	assert.Empty(t, deployer.calls)
	assert.Equal(t, StatusCompensated, attempts.status)
}
