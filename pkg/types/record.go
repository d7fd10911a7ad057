// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the citetab pipeline.
package types

// Record is one row of a citation CSV export in the standard column
// layout used by Harzing's Publish or Perish. Foreign export formats
// (IEEE Xplore CSV, BibTeX) are mapped into this layout before analysis.
type Record struct {
	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// Authors is the author list as a single string, in source order.
	Authors string `json:"authors" yaml:"authors"`

	// Year is the publication year. Zero when the source value is
	// missing or not numeric.
	Year int `json:"year" yaml:"year"`

	// Cites is the citation count. Zero when the source value is
	// missing or not numeric.
	Cites int `json:"cites" yaml:"cites"`

	// Abstract is the article abstract, when the source exports one.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// DOI is the article DOI, when the source exports one.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Journal is the publication venue, when the source exports one.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Extra holds source columns with no standard-layout equivalent,
	// keyed by the source column name.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}
