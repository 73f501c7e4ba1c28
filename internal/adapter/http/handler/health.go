package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"chatmint-studio/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 3 * time.Second

type dependencyStatus struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Dependencies are checked in parallel,
// each under its own timeout. With none configured the service is healthy.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		results := make([]dependencyStatus, len(checkers))

		var wg sync.WaitGroup
		for i, checker := range checkers {
			wg.Add(1)
			go func(i int, checker ports.HealthChecker) {
				defer wg.Done()
				results[i] = runCheck(c.Request.Context(), checker)
			}(i, checker)
		}
		wg.Wait()

		deps := make(map[string]dependencyStatus, len(checkers))
		status, code := "healthy", http.StatusOK
		for i, checker := range checkers {
			deps[checker.Name()] = results[i]
			if results[i].Status != "healthy" {
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}

		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

func runCheck(ctx context.Context, checker ports.HealthChecker) dependencyStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := checker.Ping(ctx)
	res := dependencyStatus{Status: "healthy", LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		res.Status = "unhealthy"
		res.Error = err.Error()
	}
	return res
}
