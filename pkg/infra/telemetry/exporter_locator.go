package telemetry

import (
	"fmt"

	"github.com/NeuralTrust/ContentGuard/pkg/domain/telemetry"
)

type ExporterLocator struct {
	exporters map[string]telemetry.Exporter
}

func NewExporterLocator(opts ...ExporterLocatorOption) *ExporterLocator {
	el := &ExporterLocator{
		exporters: make(map[string]telemetry.Exporter),
	}
	for _, opt := range opts {
		opt(el)
	}
	return el
}

// GetExporter validates the settings and returns a configured copy of the
// registered exporter.
func (l *ExporterLocator) GetExporter(cfg telemetry.ExporterConfig) (telemetry.Exporter, error) {
	base, ok := l.exporters[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("unknown exporter: %s", cfg.Name)
	}
	if err := base.ValidateConfig(cfg.Settings); err != nil {
		return nil, err
	}
	return base.WithSettings(cfg.Settings)
}

func (l *ExporterLocator) ValidateExporter(cfg telemetry.ExporterConfig) error {
	base, ok := l.exporters[cfg.Name]
	if !ok {
		return fmt.Errorf("unknown exporter: %s", cfg.Name)
	}
	return base.ValidateConfig(cfg.Settings)
}

// Build resolves every config, closing the ones already built on failure.
func (l *ExporterLocator) Build(configs []telemetry.ExporterConfig) ([]telemetry.Exporter, error) {
	exporters := make([]telemetry.Exporter, 0, len(configs))
	for _, cfg := range configs {
		exporter, err := l.GetExporter(cfg)
		if err != nil {
			for _, e := range exporters {
				e.Close()
			}
			return nil, fmt.Errorf("failed to build exporter %s: %w", cfg.Name, err)
		}
		exporters = append(exporters, exporter)
	}
	return exporters, nil
}
