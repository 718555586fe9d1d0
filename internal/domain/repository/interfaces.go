package repository

// Metrics is an abstraction for recording operational metrics.
type Metrics interface {
	RecordAnalysis(source, recommendation string)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
