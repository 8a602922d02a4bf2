package async

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "async")

// pcall runs fn and turns a panic into an error.
func pcall(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("async/pcall: %v", r)
		}
	}()

	fn()
	return nil
}

// Run executes fn on a new goroutine, panics are logged.
func Run(fn func()) {
	go func() {
		if err := pcall(fn); err != nil {
			logger.Error(err)
		}
	}()
}

// Call executes fn on the caller goroutine, a panic is returned as error.
func Call(fn func()) error {
	return pcall(fn)
}
