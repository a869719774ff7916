// Package observable decorates command and query handlers with metrics, tracing and logging.
//
//	handler, err := observable.NewCommandWrapper[requestborrow.Command](
//		requestborrow.NewCommandHandler(store, rates),
//		observable.WithCommandMetrics[requestborrow.Command](metrics),
//		observable.WithCommandLogging[requestborrow.Command](logger),
//	)
//
// The wrapped handlers stay free of infrastructure concerns. Business rule violations are reported
// with status "rejected" and a warning log instead of an error log.
package observable
