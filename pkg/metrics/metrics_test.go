package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording pipeline metrics", func() {
			Convey("Then similarity observations should not panic", func() {
				So(func() { RecordSimilarityRequest(3, 1.5) }, ShouldNotPanic)
				So(func() { RecordSimilarityRequest(0, 0.2) }, ShouldNotPanic)
			})

			Convey("Then story observations should not panic", func() {
				So(func() { RecordStoryRequest(2.5) }, ShouldNotPanic)
				So(func() { RecordStoryNotFound() }, ShouldNotPanic)
			})

			Convey("Then store observations should not panic", func() {
				So(func() { RecordStoreReload(12.0, 1000) }, ShouldNotPanic)
				So(func() { UpdateKnowledgeProfiles(850) }, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			So(func() { RecordHTTPRequest("similar", "GET", "200") }, ShouldNotPanic)
			So(func() { RecordHTTPRequestDuration("similar", "GET", "200", 3.0) }, ShouldNotPanic)
			So(func() { RecordHTTPError("story", "not_found") }, ShouldNotPanic)
		})

		Convey("When recording system metrics", func() {
			So(func() { UpdateSystemMemoryUsage(1024) }, ShouldNotPanic)
			So(func() { UpdateSystemGoroutineCount(12) }, ShouldNotPanic)
			So(func() { RecordSystemGCPauseTime(0.3) }, ShouldNotPanic)
		})

		Convey("When reading the registry", func() {
			Convey("Then the custom registry should be exposed", func() {
				So(GetRegistry(), ShouldNotBeNil)
			})
		})
	})
}
