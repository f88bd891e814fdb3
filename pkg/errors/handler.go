// Package errors provides panic recovery for handler code and an error
// counter that triggers a shutdown callback when too many errors pile up.
package errors

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/igecorp/igego/pkg/logger"
)

// ErrorHandler counts recovered failures inside a rolling window.
type ErrorHandler struct {
	errorCount    int32
	maxErrors     int32
	resetInterval time.Duration
	shutdownFunc  func()
	stopChan      chan struct{}
	stopOnce      sync.Once
	tripped       int32
}

// PanicError is returned by Recover when fn panicked.
type PanicError struct {
	Scope string
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Scope, e.Value)
}

var (
	handler *ErrorHandler
	once    sync.Once
)

// Init initializes the global error handler
func Init(shutdownFunc func()) *ErrorHandler {
	once.Do(func() {
		handler = NewErrorHandler(shutdownFunc)
	})
	return handler
}

// Get returns the global error handler instance
func Get() *ErrorHandler {
	return handler
}

// NewErrorHandler creates a new ErrorHandler instance
func NewErrorHandler(shutdownFunc func()) *ErrorHandler {
	h := &ErrorHandler{
		maxErrors:     15,
		resetInterval: 5 * time.Second,
		shutdownFunc:  shutdownFunc,
		stopChan:      make(chan struct{}),
	}

	h.start()
	return h
}

// start resets the error count every resetInterval.
func (h *ErrorHandler) start() {
	go func() {
		ticker := time.NewTicker(h.resetInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				atomic.StoreInt32(&h.errorCount, 0)
			case <-h.stopChan:
				return
			}
		}
	}()
}

// Stop stops the reset goroutine
func (h *ErrorHandler) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopChan)
	})
}

// Count returns the errors counted in the current window.
func (h *ErrorHandler) Count() int {
	return int(atomic.LoadInt32(&h.errorCount))
}

// IncrementError increments the error count and runs the shutdown callback
// once the count exceeds the limit. The callback runs at most once.
func (h *ErrorHandler) IncrementError() {
	count := atomic.AddInt32(&h.errorCount, 1)
	logger.Error(fmt.Sprintf("Error count: %d", count), "AntiCrash")

	if count <= h.maxErrors || !atomic.CompareAndSwapInt32(&h.tripped, 0, 1) {
		return
	}

	logger.Critical("Too many errors in a short time, shutting down", "AntiCrash")
	if h.shutdownFunc != nil {
		h.shutdownFunc()
	}
}

// HandlePanic handles a recovered panic
func (h *ErrorHandler) HandlePanic(recovered interface{}) {
	h.IncrementError()
	logger.Debug("Unhandled panic", "AntiCrash")
	logger.Error(fmt.Sprintf("%v", recovered), "SYS")
}

// RecoverMiddleware returns a recovery function for use in deferred calls
func RecoverMiddleware() func() {
	return func() {
		if r := recover(); r != nil {
			if handler != nil {
				handler.HandlePanic(r)
			} else {
				logger.Error(fmt.Sprintf("Panic recovered (no handler): %v", r), "AntiCrash")
			}
		}
	}
}

// Recover runs fn and converts a panic into a *PanicError.
func Recover(scope string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if handler != nil {
				handler.IncrementError()
			}
			err = &PanicError{Scope: scope, Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}
