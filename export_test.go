package cheat

import "regexp"

// CompilePattern exposes the adapter pattern cache for testing.
func CompilePattern(p string) (*regexp.Regexp, error) {
	return compilePattern(p)
}
