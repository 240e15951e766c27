package keyword

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// cpuFeatures records the SIMD features available on this machine, the
// way coregx-coregex/simd dispatches on cpu.X86.HasAVX2 to pick an
// implementation. The keyword index itself is pure Go (see DESIGN.md for
// why: the retrieval pack's copy of the teacher's SIMD code references
// assembly files that aren't present to ground against), so these flags
// are recorded for diagnostics/telemetry rather than used to branch —
// a future SIMD-accelerated scan could key off them without changing
// Stats' shape.
var cpuFeatures = struct {
	HasSSE42 bool
	HasAVX2  bool
}{
	HasSSE42: cpu.X86.HasSSE42,
	HasAVX2:  cpu.X86.HasAVX2,
}

// Stats is a point-in-time snapshot of an Index's activity, in the style
// of coregx-coregex/meta.Engine's embedded Stats field.
type Stats struct {
	// Nodes is the number of automaton nodes currently allocated.
	Nodes uint64

	// BytesScanned is the cumulative number of text bytes passed to Query.
	BytesScanned uint64

	// Queries is the number of completed Query calls.
	Queries uint64

	// HasSSE42 and HasAVX2 report CPU features detected at process start.
	HasSSE42 bool
	HasAVX2  bool
}

// counters holds the atomically-updated fields backing Stats. It is
// embedded by value in Index; atomic fields must not be copied after
// first use.
type counters struct {
	nodes        uint64
	bytesScanned uint64
	queries      uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Nodes:        atomic.LoadUint64(&c.nodes),
		BytesScanned: atomic.LoadUint64(&c.bytesScanned),
		Queries:      atomic.LoadUint64(&c.queries),
		HasSSE42:     cpuFeatures.HasSSE42,
		HasAVX2:      cpuFeatures.HasAVX2,
	}
}
