package metrics

import "time"

// TaskMetrics records outcomes of the task and object handlers.
type TaskMetrics interface {
	TaskCreated()
	TasksListed(n int)
	ObjectWritten()
	ObjectWriteFailed()
	StoreLatency(op string, d time.Duration)
}

// Noop discards every observation.
type Noop struct{}

func (Noop) TaskCreated()                       {}
func (Noop) TasksListed(int)                    {}
func (Noop) ObjectWritten()                     {}
func (Noop) ObjectWriteFailed()                 {}
func (Noop) StoreLatency(string, time.Duration) {}
