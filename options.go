package easel

// Option configures a Session during Open.
//
// Example:
//
//	// 800x600 window refreshed at most 60 times per second
//	s, err := easel.Open(800, 600, easel.WithRefreshRate(60), easel.WithTitle("Snake"))
type Option func(*options)

// DefaultEvents are the names queued when WithEvents is not given.
var DefaultEvents = []string{LeftClick, RightClick, KeyPress}

type options struct {
	refreshRate int
	title       string
	events      []string
	platform    PlatformFactory
	background  string
}

func defaultOptions() options {
	return options{
		refreshRate: 100,
		title:       "easel",
		events:      DefaultEvents,
		platform:    defaultPlatform,
		background:  "white",
	}
}

// WithRefreshRate sets the maximum number of refreshes per second.
// Refresh sleeps so that consecutive calls are at least 1/hz apart.
func WithRefreshRate(hz int) Option {
	return func(o *options) {
		o.refreshRate = hz
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithEvents replaces DefaultEvents with the given names. Quit is always
// queued whatever the list says. WithEvents() with no names queues Quit
// alone; leave the option out to keep DefaultEvents.
//
// Example:
//
//	// Only keyboard and mouse motion reach the queue
//	s, err := easel.Open(400, 400, easel.WithEvents(easel.KeyPress, easel.Move))
func WithEvents(names ...string) Option {
	return func(o *options) {
		o.events = names
	}
}

// WithPlatform sets the window implementation, e.g. DesktopPlatform or
// TerminalPlatform. The default tries a native window and falls back to the
// terminal; tests use platform/sim.
func WithPlatform(f PlatformFactory) Option {
	return func(o *options) {
		if f != nil {
			o.platform = f
		}
	}
}

// WithBackground sets the canvas background color, e.g. "black" or "#f0f0f0".
func WithBackground(color string) Option {
	return func(o *options) {
		o.background = color
	}
}
