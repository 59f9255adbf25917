package cmd

import (
	"fmt"
	"sync"
	"time"
)

// spinnerFrames cycles at one frame per tick while a backend call is in
// flight.
const spinnerFrames = `|/-\`

// spinner is a simple single-line progress indicator.
type spinner struct {
	message string
	quit    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	active  bool
}

func newSpinner(message string) (s *spinner) {
	s = &spinner{
		message: message,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	return s
}

func (s *spinner) start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			select {
			case <-s.quit:
				// Erase the whole line so command output starts clean.
				fmt.Print("\r\x1b[2K")
				return
			case <-ticker.C:
				fmt.Printf("\r%c %s", spinnerFrames[frame%len(spinnerFrames)], s.message)
			}
		}
	}()
}

func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.mu.Unlock()

	close(s.quit)
	<-s.done
}

// withSpinner runs fn behind a spinner unless verbose mode is on, in
// which case the message prints plainly.
func withSpinner(message string, fn func() error) (err error) {
	if getVerbose() {
		fmt.Println(message)
		err = fn()
		return err
	}

	s := newSpinner(message)
	s.start()
	err = fn()
	s.stopSpinner()
	return err
}
