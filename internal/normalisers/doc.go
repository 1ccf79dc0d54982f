// Package normalisers parses local exports of documents (plain text,
// Markdown, HTML and DOCX) into the same document model the Docs API
// produces, so offline counting goes through the same text extraction.
// Table content is dropped in every format, as it is for Google Docs.
//
// Normalisers are registered with the Registry at startup.
package normalisers
