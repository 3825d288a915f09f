package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Tokens   bool
	Registry bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("GDV_DEBUG_PARSE")
	d.Tokens = boolEnv("GDV_DEBUG_TOKENS")
	d.Registry = boolEnv("GDV_DEBUG_REGISTRY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Parse reports whether grammar alternatives and backtracking are logged.
func Parse() bool {
	return d.Parse
}

func Tokens() bool {
	return d.Tokens
}

// Registry reports whether object-call reductions are logged.
func Registry() bool {
	return d.Registry
}
