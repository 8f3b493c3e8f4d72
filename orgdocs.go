// Package orgdocs aggregates documentation from GitHub repositories,
// public product docs, infrastructure registries and arbitrary URLs into a
// uniform markdown corpus, caches fetched content, and serves full-text
// search and direct retrieval over it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, github/).
package orgdocs
