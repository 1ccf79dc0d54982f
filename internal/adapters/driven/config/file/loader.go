package file

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// Overrides are explicitly set values, typically command-line flags.
// Nil fields are not set.
type Overrides struct {
	CredentialsFile *string
	DocumentID      *string
	FolderID        *string
	TagMapping      *string
	Names           *string
	Debug           *bool
	PageSize        *int
}

// Options controls where Load reads configuration from.
type Options struct {
	// ConfigPath is an explicit config file. A missing explicit file is an
	// error; a missing default file is not.
	ConfigPath string

	// EnvFile is the dotenv file. Defaults to DefaultEnvFile.
	EnvFile string

	// Lookup reads the process environment. Defaults to os.LookupEnv.
	Lookup LookupFunc

	Overrides Overrides
}

// settings collects raw values before the mapping is resolved.
type settings struct {
	credentials string
	documentID  string
	folderID    string
	tagMapping  string
	names       string
	people      *Config
	debug       bool
	pageSize    int
}

// Load builds the scan configuration from every source in precedence order.
// It does not validate required settings; callers decide what they need.
// Malformed values are errors wrapping domain.ErrInvalidConfig.
func Load(opts Options) (domain.ScanConfig, error) {
	var s settings

	fileCfg, err := loadFile(opts.ConfigPath)
	if err != nil {
		return domain.ScanConfig{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	s.applyFile(fileCfg)

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	dotenv, err := ReadDotEnv(envFile)
	if err != nil {
		return domain.ScanConfig{}, fmt.Errorf("%w: read %s: %w", domain.ErrInvalidConfig, envFile, err)
	}
	if err := s.applyEnv(Layered(opts.Lookup, dotenv)); err != nil {
		return domain.ScanConfig{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	s.applyOverrides(opts.Overrides)

	mapping, err := s.mapping()
	if err != nil {
		return domain.ScanConfig{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	return domain.ScanConfig{
		CredentialsFile: s.credentials,
		DocumentID:      s.documentID,
		FolderID:        s.folderID,
		Mapping:         mapping,
		PageSize:        s.pageSize,
		Debug:           s.debug,
	}, nil
}

// defaultPath is swapped out in tests.
var defaultPath = DefaultPath

func loadFile(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultPath()
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (s *settings) applyFile(cfg *Config) {
	if cfg == nil {
		return
	}
	s.credentials = cfg.CredentialsFile
	s.documentID = cfg.DocumentID
	s.folderID = cfg.FolderID
	s.names = strings.Join(cfg.Names, ",")
	s.debug = cfg.Debug
	s.pageSize = cfg.PageSize
	if len(cfg.People) > 0 {
		s.people = cfg
	}
}

func (s *settings) applyEnv(lookup LookupFunc) error {
	setFromEnv(lookup, EnvCredentialsFile, &s.credentials)
	setFromEnv(lookup, EnvDocumentID, &s.documentID)
	setFromEnv(lookup, EnvFolderID, &s.folderID)
	setFromEnv(lookup, EnvTagMapping, &s.tagMapping)
	setFromEnv(lookup, EnvTargetNames, &s.names)

	if v, ok := lookup(EnvDebug); ok {
		s.debug = ParseBool(v)
	}
	if v, ok := lookup(EnvPageSize); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", EnvPageSize, v)
		}
		s.pageSize = n
	}
	return nil
}

func setFromEnv(lookup LookupFunc, key string, dst *string) {
	if v, ok := lookup(key); ok {
		*dst = strings.TrimSpace(v)
	}
}

func (s *settings) applyOverrides(o Overrides) {
	setString(o.CredentialsFile, &s.credentials)
	setString(o.DocumentID, &s.documentID)
	setString(o.FolderID, &s.folderID)
	setString(o.TagMapping, &s.tagMapping)
	setString(o.Names, &s.names)
	if o.Debug != nil {
		s.debug = *o.Debug
	}
	if o.PageSize != nil {
		s.pageSize = *o.PageSize
	}
}

func setString(src, dst *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = strings.TrimSpace(*src)
	}
}

// mapping picks the first configured of: the compact mapping string, the
// config file's people, the flat names list.
func (s *settings) mapping() (domain.TagMapping, error) {
	switch {
	case s.tagMapping != "":
		return domain.ParseTagMapping(s.tagMapping)
	case s.people != nil:
		return s.people.Mapping()
	case s.names != "":
		return domain.MappingFromNames(domain.SplitNames(s.names))
	default:
		return nil, nil
	}
}
