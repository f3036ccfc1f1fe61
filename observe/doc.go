// Package observe provides OpenTelemetry metrics integration for stream
// pipelines.
//
//	mp, err := observe.InitMeter(ctx, observe.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observe.NewMetrics(observe.Meter("my-service"))
//	counted := stream.Instrumented(src, metrics, "orders")
package observe
