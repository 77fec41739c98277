package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/app"
	"github.com/arminmzh/storeforge-backend/internal/config"
	mongoclient "github.com/arminmzh/storeforge-backend/pkg/client/mongodb"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type APITestSuite struct {
	suite.Suite
	cfg     *config.Config
	db      *mongo.Database
	logger  *zap.Logger
	baseUrl string
	app     *app.App

	gitHost    *httptest.Server
	deployHost *httptest.Server
}

func TestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, &APITestSuite{})
}

func (s *APITestSuite) SetupSuite() {
	cfg := config.MustLoadByPath("../config/test.yml")

	s.gitHost = httptest.NewServer(http.HandlerFunc(fakeGitHostHandler))
	s.deployHost = httptest.NewServer(http.HandlerFunc(fakeDeployHandler))
	cfg.GitHost.BaseURL = s.gitHost.URL
	cfg.Deploy.BaseURL = s.deployHost.URL

	db, err := mongoclient.New(context.TODO(), mongoclient.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	s.Require().NoError(err)

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	app := app.NewApp(log, *cfg)

	s.cfg = cfg
	s.db = db
	s.logger = log
	s.baseUrl = fmt.Sprintf("http://localhost%s/api", cfg.HTTPServer.Address)
	s.app = app

	go func() {
		app.MustRun()
	}()

	log.Info("server started", zap.String("addr", cfg.HTTPServer.Address))

	time.Sleep(500 * time.Millisecond)
}

func (s *APITestSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.app.Shutdown(ctx)
	s.Require().NoError(err)

	s.gitHost.Close()
	s.deployHost.Close()
}

func (s *APITestSuite) SetupTest() {
	s.applyMigrations()
}

func (s *APITestSuite) TearDownTest() {
	// dropping the database clears both the data and the recorded
	// migration version, so every test starts from scratch
	err := s.db.Drop(context.Background())
	s.Require().NoError(err)
}

func (s *APITestSuite) applyMigrations() {
	uri := fmt.Sprintf("%s/%s", s.cfg.Mongo.URI, s.cfg.Mongo.Database)

	m, err := migrate.New("file://../migrations", uri)
	s.Require().NoError(err)

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		s.Require().NoError(err)
	}
}

// fakeGitHostHandler stands in for the git-hosting API during tests:
// template generation, file commits and repo deletion all succeed.
func fakeGitHostHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/generate") {
		var body struct {
			Name string `json:"name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"name":     body.Name,
			"html_url": "https://git.test/storeforge-test/" + body.Name,
		})
		return
	}

	w.WriteHeader(http.StatusOK)
}

// fakeDeployHandler stands in for the hosting platform API.
func fakeDeployHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && r.URL.Path == "/projects" {
		var body struct {
			Name string `json:"name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"projectId": "prj_" + body.Name,
			"url":       "https://" + body.Name + ".deploy.test",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
}
