package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashHandler atomic.Pointer[func(any)]

// SetCrashHandler installs the cleanup hook run before a crash report
// The terminal frontend uses it to restore the screen
func SetCrashHandler(fn func(any)) {
	crashHandler.Store(&fn)
}

// HandleCrash restores the terminal through the installed hook, reports r with a stack and exits
// A nil r is ignored so it can be called directly with recover()
func HandleCrash(r any) {
	if r == nil {
		return
	}
	if fn := crashHandler.Load(); fn != nil && *fn != nil {
		(*fn)(r)
	}

	fmt.Fprintf(os.Stderr, "\r\npuzzle-snap: panic: %v\r\n%s\r\n", r, debug.Stack())
	_ = os.Stderr.Sync()
	os.Exit(2)
}

// Go starts fn on a goroutine whose panic goes through HandleCrash
func Go(fn func()) {
	go func() {
		defer func() { HandleCrash(recover()) }()
		fn()
	}()
}
