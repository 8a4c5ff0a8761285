package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	errs "github.com/matzehuels/dripomatic/pkg/errors"
	"github.com/matzehuels/dripomatic/pkg/render"
)

// defaultConfigFile is read from the working directory when --config is not given.
const defaultConfigFile = appName + ".toml"

// Environment variables that override the config file.
const (
	envOutput       = "DRIPOMATIC_OUTPUT"
	envFormat       = "DRIPOMATIC_FORMAT"
	envEngine       = "DRIPOMATIC_ENGINE"
	envGraphvizPath = "DRIPOMATIC_GRAPHVIZ_PATH"
	envView         = "DRIPOMATIC_VIEW"
)

// Config is the dripomatic.toml file layout.
//
//	[render]
//	output = "dripomatic_graph"
//	format = "png"
//	engine = "exec"
//	graphviz_path = "/opt/graphviz/bin"
//	view = true
type Config struct {
	Render RenderConfig `toml:"render"`
}

// RenderConfig holds the settings of a render run.
type RenderConfig struct {
	Output       string `toml:"output"`
	Format       string `toml:"format"`
	Engine       string `toml:"engine"`
	GraphvizPath string `toml:"graphviz_path"`
	View         bool   `toml:"view"`
}

// defaultConfig returns the settings used when nothing else is configured.
func defaultConfig() Config {
	return Config{Render: RenderConfig{
		Output: render.DefaultOutput,
		Format: render.DefaultFormat,
		Engine: engineExec,
		View:   true,
	}}
}

// loadConfig builds the effective configuration: defaults, then the TOML
// file, then .env and DRIPOMATIC_* environment variables. Flags are applied
// by the commands afterwards.
//
// An explicit path must exist; the default ./dripomatic.toml is optional.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if err := decodeConfigFile(path, explicit, &cfg); err != nil {
		return cfg, err
	}

	// A missing .env file is not an error.
	_ = godotenv.Load()
	if err := applyEnv(&cfg.Render); err != nil {
		return cfg, err
	}

	return cfg, cfg.Render.validate()
}

func decodeConfigFile(path string, explicit bool, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errs.New(errs.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func applyEnv(rc *RenderConfig) error {
	if v, ok := os.LookupEnv(envOutput); ok && v != "" {
		rc.Output = v
	}
	if v, ok := os.LookupEnv(envFormat); ok && v != "" {
		rc.Format = v
	}
	if v, ok := os.LookupEnv(envEngine); ok && v != "" {
		rc.Engine = v
	}
	if v, ok := os.LookupEnv(envGraphvizPath); ok && v != "" {
		rc.GraphvizPath = v
	}
	if v, ok := os.LookupEnv(envView); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "%s must be a boolean", envView)
		}
		rc.View = b
	}
	return nil
}

// validate checks enumerated settings.
func (rc RenderConfig) validate() error {
	if err := render.ValidateFormat(rc.Format); err != nil {
		return err
	}
	if err := errs.ValidateChoice(errs.ErrCodeInvalidEngine, "engine", rc.Engine, engines); err != nil {
		return err
	}
	return errs.ValidateOutputName(rc.Output)
}

// newEngine returns the render engine the configuration selects.
func newEngine(rc RenderConfig) (render.Engine, error) {
	switch rc.Engine {
	case engineExec:
		return render.ExecEngine{Dir: rc.GraphvizPath}, nil
	case engineEmbedded:
		return render.EmbeddedEngine{}, nil
	}
	return nil, errs.ValidateChoice(errs.ErrCodeInvalidEngine, "engine", rc.Engine, engines)
}
