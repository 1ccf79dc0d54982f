// Package google provides shared infrastructure for the Google API connectors.
//
// This package contains common utilities used by the docs and drive
// connectors including:
//   - Service account credentials loading into an oauth2.TokenSource
//   - Service factories for creating Google API clients
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Request pacing to stay below Google API quotas
//
// # Usage
//
// Both connectors share one token source:
//
//	ts, err := google.NewServiceAccountTokenSource(ctx, credentialsFile, google.ReadOnlyScopes...)
//	docsSvc, err := google.NewDocsService(ctx, ts)
//	driveSvc, err := google.NewDriveService(ctx, ts)
//
// # OAuth2 Scopes
//
// The scanner only reads:
//   - https://www.googleapis.com/auth/documents.readonly
//   - https://www.googleapis.com/auth/drive.readonly
//
// The service account must be granted access to the documents or folders
// being scanned, e.g. by sharing them with its client email.
package google
