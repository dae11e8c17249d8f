package lookup

// Trace strides.
const (
	// TraceOff disables progress lines.
	TraceOff = 0
	// TraceEvery emits a progress line for every visit.
	TraceEvery = 1
	// SomeStride emits a progress line every 16384 visits.
	SomeStride = 16384
)

// Sampler decides which visits produce a progress line. One Sampler is shared
// by the directory walk and every archive scan of a run, so sampling is over
// the combined visit stream.
type Sampler struct {
	stride  uint64
	counter uint64
}

// NewSampler returns a Sampler that fires every stride visits.
// A stride of zero or less never fires.
func NewSampler(stride int) *Sampler {
	if stride < 0 {
		stride = TraceOff
	}
	return &Sampler{stride: uint64(stride)}
}

// ShouldTrace counts one visit and reports whether it should be traced.
func (s *Sampler) ShouldTrace() bool {
	if s == nil || s.stride == TraceOff {
		return false
	}
	s.counter++
	if s.counter == s.stride {
		s.counter = 0
		return true
	}
	return false
}
