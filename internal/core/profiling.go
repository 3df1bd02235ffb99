package core

import (
	"dashboard/internal/models"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// StartProfiler starts continuous profiling when enabled. The returned
// profiler is nil otherwise.
func StartProfiler(config models.ProfilingConfiguration) *pyroscope.Profiler {
	if !config.Enabled {
		return nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: config.ApplicationName,
		ServerAddress:   config.ServerAddress,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		zap.L().Error("Failed to start profiler", zap.Error(err))
		return nil
	}

	zap.L().Info("Profiling enabled", zap.String("server", config.ServerAddress))
	return profiler
}
