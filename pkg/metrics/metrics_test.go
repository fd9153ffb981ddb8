package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		Convey("When created with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When created with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("mcp"),
				WithHistogramBuckets([]float64{1, 10, 100}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerRecording(t *testing.T) {
	Convey("Given an enabled manager on a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry))

		Convey("When recording tool and upstream observations", func() {
			manager.RecordToolCall("manage_assets", OutcomeSuccess)
			manager.RecordToolCall("manage_assets", OutcomeError)
			manager.ObserveToolCallDuration("manage_assets", 12.5)
			manager.RecordUpstreamRequest("assets.get", "GET", "200")
			manager.ObserveUpstreamDuration("assets.get", 40)
			manager.RecordUpstreamError("not_found")

			Convey("Then the registry should expose the metric families", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["snipemcp_server_tool_calls_total"], ShouldBeTrue)
				So(names["snipemcp_server_tool_call_duration_ms"], ShouldBeTrue)
				So(names["snipemcp_server_upstream_requests_total"], ShouldBeTrue)
				So(names["snipemcp_server_upstream_request_duration_ms"], ShouldBeTrue)
				So(names["snipemcp_server_upstream_errors_total"], ShouldBeTrue)
			})
		})
	})

	Convey("Given a disabled manager", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry), WithMetricsEnabled(false))

		Convey("When recording, nothing should panic", func() {
			So(func() {
				manager.RecordToolCall("asset_files", OutcomeSuccess)
				manager.ObserveToolCallDuration("asset_files", 1)
				manager.RecordUpstreamError("auth")
			}, ShouldNotPanic)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When using package-level helpers", func() {
			So(func() {
				RecordToolCall("asset_licenses", OutcomeSuccess)
				ObserveToolCallDuration("asset_licenses", 3)
				RecordUpstreamRequest("licenses.list", "GET", "200")
				ObserveUpstreamDuration("licenses.list", 3)
				RecordUpstreamError("api")
			}, ShouldNotPanic)

			Convey("Then the custom registry should be exposed", func() {
				So(GetRegistry(), ShouldNotBeNil)
			})
		})
	})
}
