package tracing

import (
	"fmt"

	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
)

// HoneycombSetup uses the honeycomb distro to set up the OpenTelemetry SDK.
// When tracing is disabled, a no-op shutdown function is returned.
func HoneycombSetup(enabled bool, serviceName string) (shutdown func(), err error) {
	if !enabled {
		log.Debugln("honeycomb tracing disabled")
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	log.Debugln("honeycomb tracing set up")
	return otelShutdown, nil
}
