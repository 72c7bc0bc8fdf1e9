// Package config groups IB's compile-time tunables in one place rather
// than scattering magic numbers across the pipeline stages.
package config

const SourceFileExt = ".ib"

// MaxSourceSize bounds how much source text analyze() will lex before
// bailing, protecting the CLI and any future embedding host from
// runaway memory use on pathological input.
const MaxSourceSize = 4 << 20 // 4 MiB

// MaxCallStackDepth bounds the evaluator's recursive call nesting so a
// runaway recursive IB program fails with a reported runtime error
// instead of exhausting the host's goroutine stack.
const MaxCallStackDepth = 2048

// Built-in function names the binder pre-populates the root scope with.
const (
	InputFuncName = "input"
)

// DefaultStorePath is where `ibc` keeps its diagnostics run log when the
// caller doesn't override it with --store.
const DefaultStorePath = "ibc-sessions.db"
