// Package logging provides the structured logging interface of the snippet
// runner. Components depend on Logger and receive a zerolog-backed adapter.
package logging
