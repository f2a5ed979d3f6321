// Package mako converts fully-rendered HTML pages into content capsules:
// compact, token-budgeted documents with structured frontmatter and a
// markdown body, designed for programmatic consumers (agents, crawlers)
// that want a machine-readable equivalent of a web page.
//
// This package contains domain types, interfaces, and pure pipeline
// algorithms following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, trafilatura/, sqlite/).
package mako
