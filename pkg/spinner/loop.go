package spinner

import (
	"time"

	"github.com/elseano/spinner/pkg/term"
	"github.com/elseano/spinner/pkg/util"
)

type updateKind int

const (
	updateStatus updateKind = iota
	updateMessage
)

func (k updateKind) String() string {
	if k == updateMessage {
		return "message"
	}
	return "status"
}

type update struct {
	kind updateKind
	text string
}

// renderLoop owns all spinner state. Only its goroutine reads or writes it.
type renderLoop struct {
	status   string
	frames   []string
	cursor   int
	interval time.Duration
	format   Formatter
	sink     term.Sink
	updates  <-chan update

	done chan struct{}
	err  error
}

// cycle drains every queued update, prints the last message seen, and redraws
// the spinner line. It returns false once the update channel is closed.
func (l *renderLoop) cycle() (bool, error) {
	var (
		message    string
		hasMessage bool
		closing    bool
	)

drain:
	for {
		select {
		case u, ok := <-l.updates:
			if !ok {
				closing = true
				break drain
			}

			switch u.kind {
			case updateStatus:
				l.status = u.text
			case updateMessage:
				message, hasMessage = u.text, true
			}
		default:
			break drain
		}
	}

	if hasMessage {
		if err := l.sink.Message(message); err != nil {
			return false, err
		}
	}

	if closing {
		return false, l.sink.Done()
	}

	if err := l.sink.Redraw(l.format(l.frames[l.cursor], l.status)); err != nil {
		return false, err
	}

	l.cursor = (l.cursor + 1) % len(l.frames)

	return true, nil
}

func (l *renderLoop) run() {
	defer close(l.done)

	for {
		more, err := l.cycle()
		if err != nil {
			util.Logger.Debug().Err(err).Msg("Spinner output failed, stopping render loop")
			l.err = err
			return
		}

		if !more {
			util.Logger.Debug().Msg("Spinner closed")
			return
		}

		time.Sleep(l.interval)
	}
}
