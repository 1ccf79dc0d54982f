// Package html provides a Normaliser for HTML exports ("Download as web
// page"). Tags, scripts, styles and tables are removed and entities are
// decoded; each remaining line of visible text becomes a paragraph.
package html
