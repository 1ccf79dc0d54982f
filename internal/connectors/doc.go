// Package connectors holds the adapters that read documents from outside
// the process: the Google Docs and Drive APIs, and local files watched
// for offline counting.
package connectors
