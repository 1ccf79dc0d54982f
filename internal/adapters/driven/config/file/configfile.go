package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// AppName is the directory name used under the XDG config home.
const AppName = "cardscan"

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = "config.toml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported configuration file format")

// Person is one [[people]] entry of the config file.
type Person struct {
	Name string   `toml:"name" yaml:"name"`
	Tags []string `toml:"tags" yaml:"tags"`
}

// Config is the structure of the cardscan configuration file.
type Config struct {
	// CredentialsFile is resolved relative to the config file's directory.
	CredentialsFile string `toml:"credentials_file,omitempty" yaml:"credentials_file,omitempty"`

	DocumentID string `toml:"document_id,omitempty" yaml:"document_id,omitempty"`
	FolderID   string `toml:"folder_id,omitempty" yaml:"folder_id,omitempty"`

	// Names is the flat fallback list, used only when People is empty.
	Names []string `toml:"names,omitempty" yaml:"names,omitempty"`

	People []Person `toml:"people,omitempty" yaml:"people,omitempty"`

	Debug    bool `toml:"debug,omitempty" yaml:"debug,omitempty"`
	PageSize int  `toml:"page_size,omitempty" yaml:"page_size,omitempty"`

	// Path is where the configuration was loaded from.
	Path string `toml:"-" yaml:"-"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, DefaultConfigFile)
}

// LoadConfigFile reads a configuration file. The format is chosen by
// extension: .toml, or .yaml/.yml. A missing file returns ErrConfigNotFound.
func LoadConfigFile(path string) (*Config, error) {
	unmarshal, err := unmarshalerFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.Path = path
	if cfg.CredentialsFile != "" && !filepath.IsAbs(cfg.CredentialsFile) {
		cfg.CredentialsFile = filepath.Join(filepath.Dir(path), cfg.CredentialsFile)
	}
	return &cfg, nil
}

func unmarshalerFor(path string) (func([]byte, any) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal, nil
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Mapping converts the [[people]] entries to a validated tag mapping.
// An empty people list yields an empty mapping.
func (c *Config) Mapping() (domain.TagMapping, error) {
	if c == nil || len(c.People) == 0 {
		return nil, nil
	}

	entries := make([]domain.PersonTags, len(c.People))
	for i, p := range c.People {
		entries[i] = domain.PersonTags{Person: p.Name, Tags: p.Tags}
	}
	return domain.NewTagMapping(entries)
}
