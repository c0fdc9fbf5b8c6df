//go:build !spheredebug

package geometry

import "github.com/df07/go-sphere-core/pkg/core"

// SetDebugLogger sets where precondition violations are reported.
// It has no effect unless the package is built with the spheredebug tag.
func SetDebugLogger(logger core.Logger) {}

func checkHit(centerDistance, radius float64) {}
