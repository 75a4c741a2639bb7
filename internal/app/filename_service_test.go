package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/telemetry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func noopMetrics(t *testing.T) *telemetry.Metrics {
	t.Helper()
	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "test-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return m
}

func TestNewFilenameService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewFilenameService(filename.Portable, nil, nil)
	if svc.logger == nil {
		t.Fatal("NewFilenameService(nil logger) should create a no-op logger, got nil")
	}
}

func TestFilenameService_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		platform     string
		wantPlatform string
		wantKind     filename.Kind
	}{
		{name: "valid on default rules", input: "1.20.1-forge", wantPlatform: "android"},
		{name: "colon allowed on android", input: "a:b", platform: "android", wantPlatform: "android"},
		{name: "colon rejected on windows", input: "a:b", platform: "windows", wantPlatform: "windows", wantKind: filename.KindIllegalCharacters},
		{name: "platform is case insensitive", input: "a:b", platform: "Portable", wantPlatform: "portable", wantKind: filename.KindIllegalCharacters},
		{name: "empty name", input: "", wantPlatform: "android", wantKind: filename.KindInvalidLength},
		{name: "trailing space", input: "modded ", wantPlatform: "android", wantKind: filename.KindLeadingOrTrailingSpace},
		{name: "slash on default rules", input: "a/b", wantPlatform: "android", wantKind: filename.KindIllegalCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewFilenameService(filename.Android, noopMetrics(t), discardLogger())

			rules, err := svc.Validate(context.Background(), tt.input, tt.platform)
			if rules.Platform != tt.wantPlatform {
				t.Errorf("Validate() rules.Platform = %q, want %q", rules.Platform, tt.wantPlatform)
			}

			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("Validate(%q) error = %v, want nil", tt.input, err)
				}
				return
			}

			var ferr *filename.Error
			if !errors.As(err, &ferr) {
				t.Fatalf("Validate(%q) error = %v, want *filename.Error", tt.input, err)
			}
			if ferr.Kind() != tt.wantKind {
				t.Errorf("Validate(%q) kind = %q, want %q", tt.input, ferr.Kind(), tt.wantKind)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Validate(%q) error should wrap ErrValidation", tt.input)
			}
		})
	}
}

func TestFilenameService_Validate_UnknownPlatform(t *testing.T) {
	t.Parallel()
	svc := NewFilenameService(filename.Portable, nil, discardLogger())

	_, err := svc.Validate(context.Background(), "modded", "beos")

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *domain.ValidationError", err)
	}
	if _, ok := verr.Fields["platform"]; !ok {
		t.Errorf("Validate() fields = %v, want a platform entry", verr.Fields)
	}

	var ferr *filename.Error
	if errors.As(err, &ferr) {
		t.Error("unknown platform should not be reported as a filename violation")
	}
}

func TestFilenameService_Validate_NilMetrics(t *testing.T) {
	t.Parallel()
	svc := NewFilenameService(filename.Portable, nil, discardLogger())

	_, err := svc.Validate(context.Background(), "a*b", "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Validate() error = %v, want ErrValidation", err)
	}
}
