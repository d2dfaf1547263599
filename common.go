package seleniumx

import (
	"fmt"

	"github.com/golang/glog"
)

var debugFlag = false

// SetDebug enables trace logging of forwarded commands.
func SetDebug(debug bool) {
	debugFlag = debug
}

func debugLog(format string, args ...interface{}) {
	if !debugFlag {
		return
	}
	glog.InfoDepth(1, fmt.Sprintf(format, args...))
}
