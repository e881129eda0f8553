package spinner

import (
	"io"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"golang.org/x/exp/slices"

	"github.com/elseano/spinner/pkg/term"
	"github.com/elseano/spinner/pkg/util"
)

const (
	DefaultInterval = 100 * time.Millisecond

	// Updates are queued rather than dropped; at the default interval this
	// is far more than a caller produces between two frames.
	queueSize = 4096
)

// Formatter builds the spinner line from the current frame and status. It is
// called from the render goroutine.
type Formatter func(frame, status string) string

type Builder struct {
	status   string
	frames   []string
	interval time.Duration
	format   Formatter
	out      io.Writer
	sink     term.Sink
	colors   aurora.Aurora
}

type Option func(b *Builder)

func WithFrames(frames ...string) Option {
	return func(b *Builder) {
		b.frames = slices.Clone(frames)
	}
}

// WithInterval sets the time between redraws. Non-positive values keep the
// default.
func WithInterval(interval time.Duration) Option {
	return func(b *Builder) {
		if interval > 0 {
			b.interval = interval
		}
	}
}

func WithFormatter(format Formatter) Option {
	return func(b *Builder) {
		b.format = format
	}
}

// WithWriter sets where the spinner renders. Defaults to os.Stdout.
func WithWriter(out io.Writer) Option {
	return func(b *Builder) {
		b.out = out
	}
}

// WithSink overrides the sink otherwise chosen from the writer.
func WithSink(sink term.Sink) Option {
	return func(b *Builder) {
		b.sink = sink
	}
}

// WithColors controls colouring of the default format. By default colours are
// enabled only when the writer is a terminal.
func WithColors(colors aurora.Aurora) Option {
	return func(b *Builder) {
		b.colors = colors
	}
}

func NewBuilder(status string, opts ...Option) *Builder {
	b := &Builder{
		status:   status,
		frames:   DefaultFrames,
		interval: DefaultInterval,
		out:      os.Stdout,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Start launches the render loop and returns its handle.
func (b *Builder) Start() (*Handle, error) {
	if len(b.frames) == 0 {
		return nil, ErrNoFrames
	}

	sink := b.sink
	if sink == nil {
		sink = term.Auto(b.out)
	}

	format := b.format
	if format == nil {
		colors := b.colors
		if colors == nil {
			colors = aurora.NewAurora(util.IsTerminal(b.out))
		}
		format = defaultFormat(colors)
	}

	updates := make(chan update, queueSize)
	loop := &renderLoop{
		status:   b.status,
		frames:   slices.Clone(b.frames),
		interval: b.interval,
		format:   format,
		sink:     sink,
		updates:  updates,
		done:     make(chan struct{}),
	}

	util.Logger.Debug().
		Str("status", b.status).
		Int("frames", len(loop.frames)).
		Dur("interval", loop.interval).
		Msg("Starting spinner")

	go loop.run()

	return newHandle(updates, loop), nil
}

// Start is shorthand for NewBuilder(status, opts...).Start().
func Start(status string, opts ...Option) (*Handle, error) {
	return NewBuilder(status, opts...).Start()
}

func defaultFormat(colors aurora.Aurora) Formatter {
	return func(frame, status string) string {
		return colors.BrightCyan(frame).String() + " " + status
	}
}
