// Package cache provides a small generic, thread-safe LRU cache.
//
// The validity engine uses it to keep compiled pattern expressions keyed by
// their source, so a pattern attribute is compiled once no matter how many
// times the field is evaluated. Only the compiled expression is cached, never
// a validity result.
//
// # Usage
//
//	patterns := cache.NewLRU[string, *regexp2.Regexp](256)
//
//	re, err := patterns.GetOrCompute(src, func() (*regexp2.Regexp, error) {
//		return regexp2.Compile(src, regexp2.ECMAScript)
//	})
//
// Failed computations are not stored, so a later call retries them.
package cache
