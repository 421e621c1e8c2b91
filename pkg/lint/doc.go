// Package lint hosts the check-plugin framework for cfglint.
//
// # Architecture
//
// The package is built around four pieces:
//
//  1. Registry: maps error kinds to severity actions. The first registration
//     of a kind wins; configured overrides beat plugin defaults.
//  2. Handler: receives (kind, message) findings from plugins, classifies
//     them through the Registry, counts errors and warnings, and emits
//     wrapped output lines through a Sink.
//  3. Plugin contract: every check plugin declares its error kinds, states
//     whether it needs a live server handle, and raises findings through the
//     shared Handler. Plugins register themselves via init() functions:
//
//     import _ "github.com/driftlock/cfglint/pkg/lint/plugins"
//
//  4. Runner: partitions the selected plugins into serverless and
//     server-requiring sets, runs them in two phases, and maps the final
//     counts to a process exit code.
//
// # Execution policy
//
// Serverless plugins always run first. If any of them recorded an error, the
// server-requiring plugins are skipped for the whole run: a repository that
// failed structural checks cannot be assumed to produce a server that starts
// reliably, so server-dependent checks would themselves be unreliable.
//
// # Findings vs faults
//
// A finding is a dispatched (kind, message) event; it is absorbed into the
// Handler's counters and never aborts anything. A fault is an unexpected
// error returned from a plugin's Run; it aborts only that plugin, is logged,
// and deliberately does not touch the counters.
package lint
