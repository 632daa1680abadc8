package filefilter

import "os"

// badLeakInTest is reported when -test=true (default).
func badLeakInTest() {
	f, _ := os.Open("data.txt") // want `resource "f" is never released \(missing Close\)`
	_ = f
}
