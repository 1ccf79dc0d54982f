package domain

import (
	"errors"
	"fmt"
)

// DefaultPageSize is the folder listing page size used when none is configured.
const DefaultPageSize = 100

// MaxPageSize is the largest page size the Drive API accepts.
const MaxPageSize = 1000

// ScanMode selects what a run scans.
type ScanMode string

const (
	// ScanModeDocument scans a single document.
	ScanModeDocument ScanMode = "document"

	// ScanModeFolder scans every document under a folder tree.
	ScanModeFolder ScanMode = "folder"
)

// ScanConfig is the explicit configuration of one run. It is built once at
// process start and passed to everything that needs it.
type ScanConfig struct {
	// CredentialsFile is the path to a service account JSON key.
	CredentialsFile string

	// DocumentID selects single document mode.
	DocumentID string

	// FolderID selects folder mode. It takes priority over DocumentID.
	FolderID string

	// Mapping attributes tags to people.
	Mapping TagMapping

	// PageSize is the folder listing page size.
	PageSize int

	// Debug enables verbose logging.
	Debug bool
}

// Mode returns the scan mode. Folder mode wins when both IDs are set.
func (c ScanConfig) Mode() ScanMode {
	if c.FolderID != "" {
		return ScanModeFolder
	}
	return ScanModeDocument
}

// Target returns the folder or document ID the run starts from.
func (c ScanConfig) Target() string {
	if c.Mode() == ScanModeFolder {
		return c.FolderID
	}
	return c.DocumentID
}

// EffectivePageSize returns PageSize clamped to the accepted range.
func (c ScanConfig) EffectivePageSize() int {
	switch {
	case c.PageSize <= 0:
		return DefaultPageSize
	case c.PageSize > MaxPageSize:
		return MaxPageSize
	default:
		return c.PageSize
	}
}

// Validate reports every missing required setting.
// All returned errors wrap ErrInvalidConfig.
func (c ScanConfig) Validate() error {
	var errs []error
	if c.CredentialsFile == "" {
		errs = append(errs, ErrMissingCredentials)
	}
	if err := c.ValidateTarget(); err != nil {
		errs = append(errs, err)
	}
	if err := c.ValidateMapping(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// ValidateTarget checks that a document or folder is configured.
func (c ScanConfig) ValidateTarget() error {
	if c.DocumentID == "" && c.FolderID == "" {
		return ErrMissingTarget
	}
	return nil
}

// ValidateMapping checks that the mapping is usable.
func (c ScanConfig) ValidateMapping() error {
	if c.Mapping.IsEmpty() {
		return ErrNoTagMapping
	}
	return nil
}
