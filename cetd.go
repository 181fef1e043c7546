// Package cetd extracts the main content of HTML pages using the
// Content Extraction via Text Density (CETD) heuristic. It builds a
// density-annotated tree over a parsed document, scores every node with a
// composite text-density formula, and selects the longest contiguous
// high-density region as the article body.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. The density engine lives in density/, the DOM
// adapter in dom/, and dependency-specific implementations in subdirectories
// named after their primary dependency (e.g., sqlite/, goquery/, http/).
package cetd
