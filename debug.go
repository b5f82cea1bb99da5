package ember

import "fmt"

var layoutDebug = false // Set to true for debug logging

func debugLog(format string, args ...interface{}) {
	if layoutDebug {
		fmt.Printf(format+"\n", args...)
	}
}
