package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

const (
	StoreBackendFirestore = "firestore"
	StoreBackendMemory    = "memory"

	LogBackendGCP     = "gcp"
	LogBackendConsole = "console"
)

const (
	defaultCollection = "facts"
	defaultLimit      = 1000
	defaultPort       = 8080
	defaultLogID      = "facts"
)

type Config struct {
	GoogleCloud GoogleCloudConfig `yaml:"google_cloud"`
	Store       StoreConfig
	Queue       QueueConfig
	Web         WebConfig
	Log         LogConfig
}

type GoogleCloudConfig struct {
	ProjectID              string `yaml:"project_id"`
	ServiceAccountFilename string `yaml:"service_account_filename"`
}

type StoreConfig struct {
	Backend    string
	Collection string
	Limit      int
}

type QueueConfig struct {
	Enabled      bool
	Topic        string
	Subscription string
}

type WebConfig struct {
	Port            int
	Domain          string
	ExternalRootURL string `yaml:"external_root_url"`
}

type LogConfig struct {
	Backend string
	ID      string `yaml:"id"`
}

func ReadConfig(filename string) (*Config, error) {
	f, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return ParseConfig(f)
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}

	err := yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Store.Backend) == 0 {
		c.Store.Backend = StoreBackendFirestore
	}
	if len(c.Store.Collection) == 0 {
		c.Store.Collection = defaultCollection
	}
	if c.Store.Limit <= 0 {
		c.Store.Limit = defaultLimit
	}
	if c.Web.Port == 0 {
		c.Web.Port = defaultPort
	}
	if len(c.Log.Backend) == 0 {
		c.Log.Backend = LogBackendGCP
	}
	if len(c.Log.ID) == 0 {
		c.Log.ID = defaultLogID
	}
}
