package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"prod"`
	Mongo      Mongo      `yaml:"mongo"`
	HTTPServer HTTPServer `yaml:"http_server"`
	JWT        JWT        `yaml:"jwt"`
	Minio      Minio      `yaml:"minio"`
	GitHost    GitHost    `yaml:"git_host"`
	Deploy     Deploy     `yaml:"deploy"`
}

type Mongo struct {
	URI      string        `yaml:"uri" env:"MONGO_URI" env-required:"true"`
	Database string        `yaml:"database" env-required:"true"`
	Timeout  time.Duration `yaml:"timeout" env-default:"5s"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env-required:"true"`
	Timeout          time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	PublicAPIURL     string        `yaml:"public_api_url" env-required:"true"`
}

type JWT struct {
	Secret         string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env-default:"1h"`
}

type Minio struct {
	Endpoint        string `yaml:"endpoint" env-required:"true"`
	AccessKeyID     string `yaml:"access_key_id" env-required:"true"`
	SecretAccessKey string `yaml:"secret_access_key" env-required:"true"`
	UseSSL          bool   `yaml:"use_ssl"`
	PublicBaseURL   string `yaml:"public_base_url" env-required:"true"`
}

// GitHost configures the source-control platform that holds tenant
// storefront repositories.
type GitHost struct {
	BaseURL      string        `yaml:"base_url" env-default:"https://api.github.com"`
	Token        string        `yaml:"token" env:"GIT_HOST_TOKEN" env-required:"true"`
	Owner        string        `yaml:"owner" env-required:"true"`
	TemplateRepo string        `yaml:"template_repo" env-required:"true"`
	Timeout      time.Duration `yaml:"timeout" env-default:"30s"`
}

// Deploy configures the hosting platform where tenant storefronts run.
type Deploy struct {
	BaseURL string        `yaml:"base_url" env-required:"true"`
	Token   string        `yaml:"token" env:"DEPLOY_TOKEN" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env-default:"60s"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
