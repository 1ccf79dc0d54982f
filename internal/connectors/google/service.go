package google

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// ReadOnlyScopes are the scopes needed to fetch documents and list folders.
var ReadOnlyScopes = []string{
	docs.DocumentsReadonlyScope,
	drive.DriveReadonlyScope,
}

// NewServiceAccountTokenSource reads a service account JSON key file and
// returns a token source for the given scopes.
func NewServiceAccountTokenSource(ctx context.Context, credentialsFile string, scopes ...string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(credentialsFile) //nolint:gosec // User-provided credentials path is intentional
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	return TokenSourceFromJSON(ctx, data, scopes...)
}

// TokenSourceFromJSON builds a token source from service account key JSON.
func TokenSourceFromJSON(ctx context.Context, data []byte, scopes ...string) (oauth2.TokenSource, error) {
	cfg, err := googleoauth.JWTConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return cfg.TokenSource(ctx), nil
}

// NewDocsService creates a Google Docs API service using the provided TokenSource.
func NewDocsService(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*docs.Service, error) {
	return docs.NewService(ctx, append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)...)
}

// NewDriveService creates a Google Drive API service using the provided TokenSource.
func NewDriveService(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*drive.Service, error) {
	return drive.NewService(ctx, append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)...)
}
