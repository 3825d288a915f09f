// Package debug provides diagnostic logging switched on by environment
// variables, read once at startup:
//
//	GDV_DEBUG_PARSE     grammar alternatives tried and abandoned
//	GDV_DEBUG_TOKENS    every token the parser consumes
//	GDV_DEBUG_REGISTRY  object-call reductions through the type registry
//
// Values are parsed with strconv.ParseBool.
package debug
