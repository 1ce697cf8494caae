// Package types defines the core types and interfaces used throughout outfit.
// This includes the FS and CommandRunner interfaces, as well as data
// structures like Entry, LinkResult, and StatusReport.
package types
