package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// configFileNames lists the project configuration file names probed in
// order. The .jsonc variant is preferred so the file can carry comments.
var configFileNames = []string{".arxivctl.jsonc", ".arxivctl.json"}

// Endpoint describes a user-facing network endpoint of the stack,
// printed after a successful start so operators know where to look.
type Endpoint struct {
	// Name is the display label (e.g., "Web UI").
	Name string `json:"name"`

	// Address is the URL or host:port the service listens on.
	Address string `json:"address"`
}

// Config holds the resolved stack configuration. All fields have working
// defaults for the ArXiv Assistant stack; a project configuration file can
// override any of them.
type Config struct {
	// ComposeFile is the path to the compose manifest, relative to the
	// project directory unless absolute.
	ComposeFile string `json:"composeFile"`

	// ProjectName overrides the compose project name. When empty, compose
	// derives the project name from the directory as usual.
	ProjectName string `json:"projectName"`

	// AppService is the compose service running the Streamlit application.
	AppService string `json:"appService"`

	// OllamaService is the compose service hosting the Ollama runtime.
	// pull-model execs into this service.
	OllamaService string `json:"ollamaService"`

	// RedisService is the compose service providing the optional cache.
	// start-redis brings this one up first.
	RedisService string `json:"redisService"`

	// DataDirs are the directories ensured to exist before the stack
	// starts. Relative paths resolve against the project directory.
	DataDirs []string `json:"dataDirs"`

	// Endpoints are printed after start as operator hints.
	Endpoints []Endpoint `json:"endpoints"`

	// projectDir is where the configuration was resolved from. Not
	// serialized; set by Load.
	projectDir string
}

// Default returns the built-in configuration for the ArXiv Assistant
// stack. The values mirror the compose manifest and the directory layout
// the application expects at runtime.
func Default() *Config {
	return &Config{
		ComposeFile:   "docker-compose.yml",
		AppService:    "arxiv-assistant",
		OllamaService: "ollama",
		RedisService:  "redis",
		DataDirs: []string{
			"uploaded_pdfs",
			"paper_rag/data/embeddings",
			"paper_rag/data/papers",
			"logs",
			"models",
		},
		Endpoints: []Endpoint{
			{Name: "Web UI", Address: "http://localhost:8501"},
			{Name: "Ollama API", Address: "http://localhost:11434"},
			{Name: "Redis", Address: "localhost:6379"},
		},
	}
}

// Load resolves the configuration for the given project directory.
//
// It starts from Default() and, if a .arxivctl.jsonc or .arxivctl.json
// file exists in the directory, overlays it. The file may contain JSONC
// comments; they are stripped before parsing, the same approach the
// devcontainer ecosystem uses for its config files.
//
// A missing file is not an error, defaults apply. A present but
// unparsable file is an error, because silently ignoring a typo in an
// override file would be worse than failing.
func Load(projectDir string) (*Config, error) {
	cfg := Default()
	cfg.projectDir = projectDir

	for _, name := range configFileNames {
		path := filepath.Join(projectDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("failed to read %s", path), err)
		}

		// Strip JSONC comments and trailing commas, then parse with the
		// standard library. Unmarshal overlays onto the defaults: fields
		// absent from the file keep their default values.
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("failed to parse %s", path), err)
		}
		break
	}

	if err := cfg.validate(); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, "invalid configuration", err)
	}
	return cfg, nil
}

// validate rejects configurations that would produce nonsense compose
// invocations later on.
func (c *Config) validate() error {
	if c.ComposeFile == "" {
		return fmt.Errorf("composeFile must not be empty")
	}
	for _, svc := range []string{c.AppService, c.OllamaService, c.RedisService} {
		if err := model.ValidateServiceName(svc); err != nil {
			return err
		}
	}
	for _, dir := range c.DataDirs {
		if dir == "" {
			return fmt.Errorf("dataDirs must not contain empty entries")
		}
	}
	return nil
}

// ProjectDir returns the directory the configuration was resolved from.
func (c *Config) ProjectDir() string {
	return c.projectDir
}

// ComposeFilePath returns the absolute path to the compose manifest.
func (c *Config) ComposeFilePath() string {
	if filepath.IsAbs(c.ComposeFile) {
		return c.ComposeFile
	}
	return filepath.Join(c.projectDir, c.ComposeFile)
}
