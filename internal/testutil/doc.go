// Package testutil provides shared helpers for kernel tests: behaviors that
// record what they receive and a logger that captures emitted entries.
package testutil
