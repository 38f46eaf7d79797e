//go:build !linux

package platform

import "runtime"

// Version reports the platform identity. Diagnostic only.
func Version() string {
	return runtime.GOOS + " " + runtime.GOARCH
}
