// Package testutil provides shared helpers for outfit's tests: isolated
// test environments backed by either an in-memory or a real filesystem,
// and a recording fake for the command runner used by the secrets and
// install packages.
package testutil
