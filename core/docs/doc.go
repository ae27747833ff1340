// Package docs renders the tool catalog as reference documentation.
//
// [FormatJSON] emits the catalog entries verbatim, schemas included.
// [FormatMarkdown] builds an HTML page with html/template and converts it
// with html-to-markdown, so escaping of names and descriptions is handled by
// the converter rather than by hand.
package docs
