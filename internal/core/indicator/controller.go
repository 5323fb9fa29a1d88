// Package indicator drives a minimal loading indicator: an indeterminate
// progress animation that runs while an operation is pending and a short
// completion animation that snaps the indicator home and fades it out. The
// host supplies the visual element; the controller only coordinates the two
// animations against it.
package indicator

import "time"

// Controller binds a progress handle and a done handle to one element and
// encodes the transition rules between them. All mutation of the two handles
// is routed through Start, Done and Cancel.
type Controller struct {
	element  Element
	progress *Handle
	done     *Handle
}

type config struct {
	style            Style
	noStyle          bool
	progressSequence SequenceFunc
	doneSequence     SequenceFunc
	frameInterval    time.Duration
}

// Option configures a Controller at construction.
type Option func(*config)

// WithStyle merges the given overrides over the default style before it is
// applied to the element. Keys present in overrides win.
func WithStyle(overrides Style) Option {
	return func(cfg *config) {
		cfg.style = overrides
	}
}

// WithoutStyle leaves the element's style entirely under caller control; no
// style properties are written at construction.
func WithoutStyle() Option {
	return func(cfg *config) {
		cfg.noStyle = true
	}
}

// WithProgressSequence substitutes the generator for the indeterminate
// progress keyframes.
func WithProgressSequence(generate SequenceFunc) Option {
	return func(cfg *config) {
		if generate != nil {
			cfg.progressSequence = generate
		}
	}
}

// WithDoneSequence substitutes the generator for the completion keyframes.
func WithDoneSequence(generate SequenceFunc) Option {
	return func(cfg *config) {
		if generate != nil {
			cfg.doneSequence = generate
		}
	}
}

// WithFrameInterval overrides the playback tick interval of both handles.
func WithFrameInterval(interval time.Duration) Option {
	return func(cfg *config) {
		cfg.frameInterval = interval
	}
}

// New creates an idle controller bound to the element. Unless WithoutStyle is
// given, the merged style configuration is applied to elements that support
// direct style assignment. The done handle's finish notification is wired
// here, exactly once, to cancel the progress handle.
func New(element Element, options ...Option) *Controller {
	cfg := config{
		progressSequence: ProgressSequence,
		doneSequence:     DoneSequence,
	}
	for _, option := range options {
		option(&cfg)
	}

	if !cfg.noStyle {
		if styler, ok := element.(Styler); ok {
			styler.SetStyle(DefaultStyle().Merge(cfg.style))
		}
	}

	progress := NewHandle(element, cfg.progressSequence(element), Options{
		FrameInterval: cfg.frameInterval,
	})
	done := NewHandle(element, cfg.doneSequence(element), Options{
		FrameInterval: cfg.frameInterval,
		OnFinish:      progress.Cancel,
	})

	return &Controller{
		element:  element,
		progress: progress,
		done:     done,
	}
}

// Start begins the indeterminate progress animation. While the progress
// animation is already running the call is a no-op unless force is set, so
// overlapping "operation began" signals do not visually restart the
// indicator. The force path performs a hard restart: any in-flight completion
// visuals are discarded and progress replays from the beginning.
func (controller *Controller) Start(force bool) {
	if !force && controller.progress.State() != StateIdle {
		return
	}
	controller.done.Cancel()
	controller.progress.Cancel()
	controller.progress.Play()
}

// Done freezes the progress animation where it stands and plays the
// completion animation, which on natural completion cancels the progress
// handle and returns the controller to its pre-Start idle condition. If
// nothing is running the call is a no-op unless force is set.
func (controller *Controller) Done(force bool) {
	if !force && controller.progress.State() != StateRunning {
		return
	}
	controller.progress.Pause()
	controller.done.Play()
}

// Cancel aborts the progress animation immediately, reverting the element to
// its pre-animation state. A completion animation already in flight is left
// untouched; callers wanting a full reset mid-completion rely on its natural
// end or restart via Start with force set.
func (controller *Controller) Cancel() {
	controller.progress.Cancel()
}
