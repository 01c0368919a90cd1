// Package scheduler paces the animation loop one frame at a time.
//
// The host calls Tick once per display refresh. A frame runs only if one was
// requested beforehand, and the frame callback typically requests the next.
// Hiding the page cancels the pending frame; showing it requests a fresh one.
package scheduler

// Scheduler holds the single pending-frame handle of the animation loop.
type Scheduler struct {
	frame   func()
	pending bool
	hidden  bool
	frames  uint64
}

// New returns an idle scheduler for frame.
func New(frame func()) *Scheduler {
	return &Scheduler{frame: frame}
}

// Loop returns a scheduler whose frame runs fn and then requests the next frame.
// The first frame is requested immediately.
func Loop(fn func()) *Scheduler {
	s := &Scheduler{}
	s.frame = func() {
		fn()
		s.Request()
	}
	s.Request()
	return s
}

// Request schedules the frame for the next Tick. It is ignored while hidden,
// and repeated requests collapse into one.
func (s *Scheduler) Request() {
	if s.hidden {
		return
	}
	s.pending = true
}

// Cancel drops any pending frame.
func (s *Scheduler) Cancel() {
	s.pending = false
}

// SetHidden applies a visibility change. Hiding cancels the pending frame;
// showing after being hidden requests exactly one fresh frame.
func (s *Scheduler) SetHidden(hidden bool) {
	if hidden == s.hidden {
		return
	}
	s.hidden = hidden
	if hidden {
		s.Cancel()
		return
	}
	s.Request()
}

// Tick runs the pending frame, if any, and reports whether it ran.
func (s *Scheduler) Tick() bool {
	if !s.pending || s.hidden {
		return false
	}
	s.pending = false
	s.frames++
	if s.frame != nil {
		s.frame()
	}
	return true
}

// Pending reports whether a frame is scheduled.
func (s *Scheduler) Pending() bool { return s.pending }

// Hidden reports the last visibility state received.
func (s *Scheduler) Hidden() bool { return s.hidden }

// Frames counts the frames run so far.
func (s *Scheduler) Frames() uint64 { return s.frames }
