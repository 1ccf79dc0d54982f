package file

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// Environment variable names.
const (
	EnvCredentialsFile = "GOOGLE_CREDENTIALS_FILE"
	EnvDocumentID      = "DOCUMENT_ID"
	EnvFolderID        = "FOLDER_ID"
	EnvTagMapping      = "TAG_MAPPING"
	EnvTargetNames     = "TARGET_NAMES"
	EnvDebug           = "DEBUG"
	EnvPageSize        = "DRIVE_PAGE_SIZE"
)

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// ReadDotEnv reads a dotenv file without touching the process environment.
// A missing file yields an empty map.
func ReadDotEnv(path string) (map[string]string, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return vals, nil
}

// Layered returns a lookup that consults the process environment first and
// falls back to the dotenv values. Empty values count as unset.
func Layered(env LookupFunc, dotenv map[string]string) LookupFunc {
	if env == nil {
		env = os.LookupEnv
	}
	return func(key string) (string, bool) {
		if v, ok := env(key); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
		if v, ok := dotenv[key]; ok && strings.TrimSpace(v) != "" {
			return v, true
		}
		return "", false
	}
}

// ParseBool accepts 1, true, yes and on (case-insensitive) as true.
// Anything else is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
