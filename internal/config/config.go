package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
}

type LogConfig struct {
	File    string `toml:"file"`
	MaxSize int    `toml:"max_size"` // megabytes
	MaxAge  int    `toml:"max_age"`  // days
}

type AnalysisConfig struct {
	TopN                 int     `toml:"top_n"`
	Communities          string  `toml:"communities"`
	EigenvectorMaxIter   int     `toml:"eigenvector_max_iter"`
	EigenvectorTolerance float64 `toml:"eigenvector_tolerance"`
	PageRankAlpha        float64 `toml:"pagerank_alpha"`
	PageRankMaxIter      int     `toml:"pagerank_max_iter"`
	PageRankTolerance    float64 `toml:"pagerank_tolerance"`
}

// DatabaseConfig binds a selectable database to a record source backend:
// "mock", "yaml", "sqlite" or "memgraph".
type DatabaseConfig struct {
	Name    string `toml:"name"`
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type PromptConfig struct {
	Insight string `toml:"insight"`
}

type Config struct {
	Server    ServerConfig     `toml:"server"`
	Log       LogConfig        `toml:"log"`
	Analysis  AnalysisConfig   `toml:"analysis"`
	Databases []DatabaseConfig `toml:"databases"`
	Memgraph  MemgraphConfig   `toml:"memgraph"`
	SQLite    SQLiteConfig     `toml:"sqlite"`
	LLM       LLMConfig        `toml:"llm"`
	Prompts   PromptConfig     `toml:"prompts"`
}

// Default is the configuration used when no file is present: both databases
// served by the mock source, no insight provider.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
	}
	return &cfg, nil
}

// CommunityMethods lists the accepted [analysis] communities values.
var CommunityMethods = []string{"lpa", "components", "none"}

func (c *Config) validate() error {
	for _, m := range CommunityMethods {
		if c.Analysis.Communities == m {
			return nil
		}
	}
	return fmt.Errorf("analysis.communities %q is not one of %v", c.Analysis.Communities, CommunityMethods)
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Log.MaxSize == 0 {
		c.Log.MaxSize = 100
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = 28
	}
	if c.Analysis.TopN == 0 {
		c.Analysis.TopN = 5
	}
	if c.Analysis.Communities == "" {
		c.Analysis.Communities = "lpa"
	}
	if c.Analysis.EigenvectorMaxIter == 0 {
		c.Analysis.EigenvectorMaxIter = 500
	}
	if c.Analysis.EigenvectorTolerance == 0 {
		c.Analysis.EigenvectorTolerance = 1e-6
	}
	if c.Analysis.PageRankAlpha == 0 {
		c.Analysis.PageRankAlpha = 0.85
	}
	if c.Analysis.PageRankMaxIter == 0 {
		c.Analysis.PageRankMaxIter = 100
	}
	if c.Analysis.PageRankTolerance == 0 {
		c.Analysis.PageRankTolerance = 1e-6
	}
	if len(c.Databases) == 0 {
		c.Databases = []DatabaseConfig{
			{Name: "BioGRID", Backend: "mock"},
			{Name: "STRING", Backend: "mock"},
		}
	}
	for i := range c.Databases {
		if c.Databases[i].Backend == "" {
			c.Databases[i].Backend = "mock"
		}
	}
	if c.Memgraph.URI == "" {
		c.Memgraph.URI = "bolt://localhost:7687"
	}
	if c.SQLite.Path == "" {
		c.SQLite.Path = "interactome.db"
	}
}

// ApplyEnv overrides file settings with environment variables when set.
func (c *Config) ApplyEnv() {
	override := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	override(&c.Server.Port, "PORT")
	override(&c.Log.File, "LOG_FILE")
	override(&c.Memgraph.URI, "MEMGRAPH_URI")
	override(&c.Memgraph.User, "MEMGRAPH_USER")
	override(&c.Memgraph.Password, "MEMGRAPH_PASSWORD")
	override(&c.SQLite.Path, "SQLITE_PATH")
	override(&c.LLM.Provider, "LLM_PROVIDER")
	override(&c.LLM.Model, "LLM_MODEL")
	override(&c.LLM.APIKey, "LLM_API_KEY")
	override(&c.LLM.BaseURL, "LLM_BASE_URL")
}
