package provision

import "time"

const (
	StatusRunning     = "running"
	StatusSucceeded   = "succeeded"
	StatusCompensated = "compensated"
)

// Attempt is the persisted record of one provisioning run. It survives
// the request so a partially-failed signup can be inspected and
// resumed or cleaned up.
type Attempt struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"storeId"`
	Slug       string    `json:"slug"`
	Status     string    `json:"status"`
	StepsDone  []string  `json:"stepsDone"`
	FailedStep string    `json:"failedStep,omitempty"`
	RepoName   string    `json:"repoName,omitempty"`
	RepoURL    string    `json:"repoUrl,omitempty"`
	ProjectID  string    `json:"projectId,omitempty"`
	DeployURL  string    `json:"deployUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// State accumulates the artifacts produced by the steps; compensations
// read from it to know what to tear down.
type State struct {
	StoreID   string
	Slug      string
	RepoName  string
	RepoURL   string
	ProjectID string
	DeployURL string
}

// Result is what a fully provisioned tenant looks like.
type Result struct {
	StoreID   string
	RepoName  string
	RepoURL   string
	DeployURL string
}
