package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "fairdraw")
				So(manager.subsystem, ShouldEqual, "draw")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithPrometheusRegistry(registry),
				WithNamespace("custom"),
				WithSubsystem("pipeline"),
				WithHistogramBuckets([]float64{1, 10, 100}),
			)

			Convey("Then the options should be applied", func() {
				So(manager.namespace, ShouldEqual, "custom")
				So(manager.subsystem, ShouldEqual, "pipeline")
				So(manager.histogramBuckets, ShouldResemble, []float64{1, 10, 100})
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording draw metrics", func() {
			Convey("Then the recorders should not panic", func() {
				So(func() {
					RecordDraw()
					RecordDrawFailure("api_error")
					ObserveDrawDuration(12.5)
					ObserveParticipants(42)
					ObserveProviderRequest(8.0)
					RecordProviderError()
					RecordHTTPRequest("draws", "POST", "200")
					RecordHTTPRequestDuration("draws", "POST", "200", 3.2)
				}, ShouldNotPanic)
			})
		})

		Convey("When gathering from the registry", func() {
			families, err := GetRegistry().Gather()

			Convey("Then the draw metrics are registered", func() {
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["fairdraw_draw_draws_total"], ShouldBeTrue)
				So(names["fairdraw_draw_draw_failures_total"], ShouldBeTrue)
			})
		})
	})
}
