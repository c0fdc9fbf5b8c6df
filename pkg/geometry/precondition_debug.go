//go:build spheredebug

package geometry

import (
	"sync/atomic"

	"github.com/df07/go-sphere-core/pkg/core"
)

type loggerHolder struct {
	logger core.Logger
}

var debugLogger atomic.Value

func init() {
	debugLogger.Store(loggerHolder{core.NewDefaultLogger()})
}

// SetDebugLogger sets where precondition violations are reported.
// A nil logger silences reporting.
func SetDebugLogger(logger core.Logger) {
	debugLogger.Store(loggerHolder{logger})
}

// checkHit reports IntersectionPoint calls on rays that HitsRay rejects.
// The caller still computes and returns its (NaN or tangent) result.
func checkHit(centerDistance, radius float64) {
	if centerDistance < radius {
		return
	}
	if h := debugLogger.Load().(loggerHolder); h.logger != nil {
		h.logger.Printf("geometry: IntersectionPoint called on a ray that misses the sphere (center distance %g, radius %g)\n", centerDistance, radius)
	}
}
