package provision

import (
	"context"
	"fmt"

	"github.com/arminmzh/storeforge-backend/internal/platform/deploy"
	"github.com/arminmzh/storeforge-backend/internal/platform/githost"
	"go.uber.org/zap"
)

const (
	StepCreateRepo  = "create_repository"
	StepSeedStoreID = "seed_store_id"
	StepDeploy      = "deploy"
	StepRegisterEnv = "register_env"
)

// storeIDFileName is the artifact committed into the tenant repository
// so the deployed storefront can address its own data.
const storeIDFileName = "storeId.txt"

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockprovision
type GitHostClient interface {
	CreateFromTemplate(ctx context.Context, name string) (*githost.Repository, error)
	CommitFile(ctx context.Context, repoName, path string, content []byte, message string) error
	DeleteRepo(ctx context.Context, repoName string) error
}

type DeployClient interface {
	CreateProject(ctx context.Context, name, repoURL string) (*deploy.Deployment, error)
	SetEnv(ctx context.Context, projectID string, vars []deploy.EnvVar) error
	DeleteProject(ctx context.Context, projectID string) error
}

type AttemptRepository interface {
	Create(ctx context.Context, attempt Attempt) (*Attempt, error)
	MarkStep(ctx context.Context, id string, stepName string, state State) error
	Finish(ctx context.Context, id string, status string, failedStep string) error
}

// EnvVars is the fixed variable set registered on every deployed
// storefront: database connection string, signing secret, public API
// base URL and the source-control access token.
type EnvVars struct {
	MongoURI     string
	JWTSecret    string
	PublicAPIURL string
	GitHostToken string
}

type service struct {
	gitHost  GitHostClient
	deployer DeployClient
	attempts AttemptRepository
	envVars  EnvVars
	logger   *zap.Logger
}

func New(
	gitHost GitHostClient,
	deployer DeployClient,
	attempts AttemptRepository,
	envVars EnvVars,
	logger *zap.Logger,
) *service {
	return &service{
		gitHost:  gitHost,
		deployer: deployer,
		attempts: attempts,
		envVars:  envVars,
		logger:   logger,
	}
}

// Provision turns a tenant slug into a running storefront: repository
// from template, committed store-id artifact, deployment, environment
// variables. On failure every completed step is compensated in reverse
// and the attempt record keeps the failed step for later inspection.
func (s *service) Provision(ctx context.Context, storeID, slug string) (*Result, error) {
	attempt, err := s.attempts.Create(ctx, Attempt{
		StoreID: storeID,
		Slug:    slug,
		Status:  StatusRunning,
	})
	if err != nil {
		s.logger.Error("unexpected error when creating provisioning attempt", zap.Error(err))
		return nil, err
	}

	state := &State{StoreID: storeID, Slug: slug}

	seq := newSequence(s.steps(), s.logger)

	failedStep, err := seq.run(ctx, state, func(ctx context.Context, stepName string, state State) {
		if markErr := s.attempts.MarkStep(ctx, attempt.ID, stepName, state); markErr != nil {
			s.logger.Error("failed to persist provisioning progress",
				zap.String("step", stepName),
				zap.Error(markErr),
			)
		}
	})
	if err != nil {
		if finishErr := s.attempts.Finish(ctx, attempt.ID, StatusCompensated, failedStep); finishErr != nil {
			s.logger.Error("failed to finalize provisioning attempt", zap.Error(finishErr))
		}

		return nil, err
	}

	if finishErr := s.attempts.Finish(ctx, attempt.ID, StatusSucceeded, ""); finishErr != nil {
		s.logger.Error("failed to finalize provisioning attempt", zap.Error(finishErr))
	}

	return &Result{
		StoreID:   state.StoreID,
		RepoName:  state.RepoName,
		RepoURL:   state.RepoURL,
		DeployURL: state.DeployURL,
	}, nil
}

func (s *service) steps() []Step {
	return []Step{
		{
			Name: StepCreateRepo,
			Run: func(ctx context.Context, state *State) error {
				repo, err := s.gitHost.CreateFromTemplate(ctx, state.Slug)
				if err != nil {
					return err
				}

				state.RepoName = repo.Name
				state.RepoURL = repo.URL

				return nil
			},
			Compensate: func(ctx context.Context, state *State) error {
				return s.gitHost.DeleteRepo(ctx, state.RepoName)
			},
		},
		{
			Name: StepSeedStoreID,
			Run: func(ctx context.Context, state *State) error {
				return s.gitHost.CommitFile(
					ctx,
					state.RepoName,
					storeIDFileName,
					[]byte(state.StoreID),
					fmt.Sprintf("Seed store id for %s", state.Slug),
				)
			},
			// the file lives inside the repository; deleting the repo
			// in the previous compensation removes it too
		},
		{
			Name: StepDeploy,
			Run: func(ctx context.Context, state *State) error {
				deployment, err := s.deployer.CreateProject(ctx, state.RepoName, state.RepoURL)
				if err != nil {
					return err
				}

				state.ProjectID = deployment.ProjectID
				state.DeployURL = deployment.URL

				return nil
			},
			Compensate: func(ctx context.Context, state *State) error {
				return s.deployer.DeleteProject(ctx, state.ProjectID)
			},
		},
		{
			Name: StepRegisterEnv,
			Run: func(ctx context.Context, state *State) error {
				return s.deployer.SetEnv(ctx, state.ProjectID, []deploy.EnvVar{
					{Key: "MONGO_URI", Value: s.envVars.MongoURI},
					{Key: "JWT_SECRET", Value: s.envVars.JWTSecret},
					{Key: "PUBLIC_API_URL", Value: s.envVars.PublicAPIURL},
					{Key: "GIT_HOST_TOKEN", Value: s.envVars.GitHostToken},
				})
			},
		},
	}
}
