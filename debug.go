package mui

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
)

var (
	// 0 unset, 1 disabled, 2 enabled.
	mui_debug int32
)

func SetDebug(enabled bool) {
	if enabled {
		atomic.StoreInt32(&mui_debug, 2)
	} else {
		atomic.StoreInt32(&mui_debug, 1)
	}
}

func isDebug() bool {
	state := atomic.LoadInt32(&mui_debug)
	if state == 0 {
		// os.Environ() seems very expensive in Go so we cache
		// it.
		state = 1
		for _, x := range os.Environ() {
			if strings.HasPrefix(x, "MUI_DEBUG=") {
				state = 2
				break
			}
		}
		atomic.CompareAndSwapInt32(&mui_debug, 0, state)
	}

	return state == 2
}

func DebugPrint(fmt_str string, v ...interface{}) {
	if isDebug() {
		fmt.Fprintf(os.Stderr, fmt_str, v...)
	}
}

func Debug(arg interface{}) {
	spew.Fdump(os.Stderr, arg)
}
