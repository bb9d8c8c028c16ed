// Package workerpool runs one task per cluster id (plus a distinguished
// background id) across a fixed pool of goroutines, per spec.md §5:
// each worker operates solely on thread-local scratch during its task,
// and results are aggregated into a single slice under one mutex held
// only for the append.
package workerpool
