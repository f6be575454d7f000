package vm

import (
	"fen/internal/env"
	"fen/internal/value"
)

// TopLevelEnv builds the top-level environment value indexed by
// user-facing names of built-ins. names[i] occupies slot i, so the
// caller fixes the name→slot assignment (a Go map would not give a
// stable order); the compiler (out of scope here) is responsible for
// resolving free identifiers to these same slot indices ahead of time.
func TopLevelEnv(names []string) *env.Env {
	top := env.New(nil)
	for i, name := range names {
		_ = top.Store(0, i, value.NewFunBuiltin(name))
	}
	return top
}
