package purge

import "sync"

// Context carries the state the original implementation kept as
// process-wide globals (spec.md §9): the cluster list behind a mutex,
// and a buffer-size high-water-mark. Both live on this type instead of
// in package-level variables. Driver does not hold a Context, and
// nothing in this module constructs one.
type Context struct {
	mu          sync.Mutex
	clusters    []string
	bufferHWM   int
}

// NewContext returns a Context seeded with clusters.
func NewContext(clusters []string) *Context {
	c := &Context{}
	c.clusters = append(c.clusters, clusters...)
	return c
}

// Clusters returns a snapshot copy of the tracked cluster list, taken
// under the mutex and released immediately — callers must not hold the
// lock across a long-running archive pass (spec.md §5 scheduling model).
func (c *Context) Clusters() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.clusters))
	copy(out, c.clusters)
	return out
}

// SetClusters replaces the tracked cluster list.
func (c *Context) SetClusters(clusters []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clusters = append(c.clusters[:0], clusters...)
}

// BufferHint returns the largest size recorded so far by
// ObserveBufferSize. The archive packer does not consult it.
func (c *Context) BufferHint() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bufferHWM
}

// ObserveBufferSize records n as the new high-water-mark if it exceeds
// the current one.
func (c *Context) ObserveBufferSize(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > c.bufferHWM {
		c.bufferHWM = n
	}
}
