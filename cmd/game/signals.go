package main

import (
	"os"
	"os/signal"
)

// watchSignals calls quit on the first of sigs. The returned stop function
// unregisters the handler and waits for its goroutine to exit.
func watchSignals(quit func(), sigs ...os.Signal) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	done := forwardSignal(ch, quit)
	return func() {
		signal.Stop(ch)
		close(ch)
		<-done
	}
}

// forwardSignal calls quit once a signal arrives on ch. The returned channel
// is closed when the goroutine exits, after a signal or once ch is closed.
func forwardSignal(ch <-chan os.Signal, quit func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, ok := <-ch; ok {
			quit()
		}
	}()
	return done
}
