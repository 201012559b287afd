package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// progress matches the session view's spinner so both surfaces animate alike.
var progress = spinner.Dot

// Spinner redraws a single status line on w until stopped. It is the
// non-TUI counterpart of the session model's spinner.
type Spinner struct {
	w     io.Writer
	label string

	once sync.Once
	quit chan struct{}
	exit chan struct{}
}

func NewSpinner(w io.Writer, label string) *Spinner {
	return &Spinner{w: w, label: label, quit: make(chan struct{}), exit: make(chan struct{})}
}

func (s *Spinner) draw(n int) {
	glyph := progress.Frames[n%len(progress.Frames)]
	fmt.Fprintf(s.w, "\r  %s %s", StylePurple.Render(glyph), Dim(s.label))
}

// Start draws the first frame right away and keeps animating in the
// background.
func (s *Spinner) Start() {
	s.draw(0)
	go func() {
		defer close(s.exit)
		tick := time.NewTicker(progress.FPS)
		defer tick.Stop()
		for n := 1; ; n++ {
			select {
			case <-s.quit:
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-tick.C:
				s.draw(n)
			}
		}
	}()
}

// Stop erases the status line and waits for the animation to exit.
// Repeated calls are no-ops.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.quit)
		<-s.exit
	})
}

// StartSpinner is NewSpinner followed by Start; the returned func stops it.
func StartSpinner(w io.Writer, label string) func() {
	s := NewSpinner(w, label)
	s.Start()
	return s.Stop
}
