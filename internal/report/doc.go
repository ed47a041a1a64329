// SPDX-License-Identifier: MIT

// Package report persists support results: the parameter-named output folder,
// one CSV per input network, a YAML run manifest and an optional SQLite store.
package report
