package drive

import (
	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// Config holds Google Drive lister configuration.
type Config struct {
	// PageSize is the page size for files.list requests.
	PageSize int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		PageSize: domain.DefaultPageSize,
	}
}

// ConfigFromScan extracts lister configuration from a scan configuration.
func ConfigFromScan(cfg domain.ScanConfig) *Config {
	return &Config{
		PageSize: int64(cfg.EffectivePageSize()),
	}
}

func (c *Config) pageSize() int64 {
	if c == nil || c.PageSize <= 0 {
		return domain.DefaultPageSize
	}
	if c.PageSize > domain.MaxPageSize {
		return domain.MaxPageSize
	}
	return c.PageSize
}
