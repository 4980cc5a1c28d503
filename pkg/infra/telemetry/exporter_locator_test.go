package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/NeuralTrust/ContentGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/metrics/metric_events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExporter struct {
	name            string
	validateErr     error
	withSettingsErr error
	closed          int
}

func (f *fakeExporter) Name() string { return f.name }

func (f *fakeExporter) ValidateConfig(map[string]interface{}) error { return f.validateErr }

func (f *fakeExporter) Handle(context.Context, *metric_events.Event) error { return nil }

func (f *fakeExporter) WithSettings(map[string]interface{}) (telemetry.Exporter, error) {
	if f.withSettingsErr != nil {
		return nil, f.withSettingsErr
	}
	return f, nil
}

func (f *fakeExporter) Close() { f.closed++ }

func TestNewExporterLocator_NoOptions(t *testing.T) {
	locator := NewExporterLocator()
	assert.NotNil(t, locator.exporters)
	assert.Empty(t, locator.exporters)
}

func TestNewExporterLocator_WithExporter_OverwritesSameName(t *testing.T) {
	first := &fakeExporter{name: "kafka"}
	second := &fakeExporter{name: "kafka"}

	locator := NewExporterLocator(WithExporter("kafka", first), WithExporter("kafka", second))

	assert.Len(t, locator.exporters, 1)
	assert.Same(t, second, locator.exporters["kafka"])
}

func TestExporterLocator_GetExporter(t *testing.T) {
	exporter := &fakeExporter{name: "kafka"}
	locator := NewExporterLocator(WithExporter("kafka", exporter))

	t.Run("known exporter", func(t *testing.T) {
		got, err := locator.GetExporter(telemetry.ExporterConfig{Name: "kafka"})
		require.NoError(t, err)
		assert.Equal(t, "kafka", got.Name())
	})

	t.Run("unknown exporter", func(t *testing.T) {
		_, err := locator.GetExporter(telemetry.ExporterConfig{Name: "nope"})
		assert.EqualError(t, err, "unknown exporter: nope")
	})

	t.Run("invalid settings", func(t *testing.T) {
		bad := NewExporterLocator(WithExporter("kafka", &fakeExporter{validateErr: errors.New("kafka host is required")}))
		_, err := bad.GetExporter(telemetry.ExporterConfig{Name: "kafka"})
		assert.EqualError(t, err, "kafka host is required")
	})
}

func TestExporterLocator_Build_ClosesOnFailure(t *testing.T) {
	good := &fakeExporter{name: "good"}
	broken := &fakeExporter{name: "broken", withSettingsErr: errors.New("dial failed")}
	locator := NewExporterLocator(WithExporter("good", good), WithExporter("broken", broken))

	_, err := locator.Build([]telemetry.ExporterConfig{{Name: "good"}, {Name: "broken"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, 1, good.closed)
}

func TestExporterLocator_ValidateExporter(t *testing.T) {
	locator := NewExporterLocator(WithExporter("kafka", &fakeExporter{name: "kafka"}))
	assert.NoError(t, locator.ValidateExporter(telemetry.ExporterConfig{Name: "kafka"}))
	assert.Error(t, locator.ValidateExporter(telemetry.ExporterConfig{Name: "other"}))
}
