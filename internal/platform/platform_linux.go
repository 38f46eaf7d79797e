//go:build linux

package platform

import "golang.org/x/sys/unix"

// Version reports "Linux <kernel version>" from uname, matching what
// the native side reports on this platform.
func Version() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "Linux unknown"
	}
	return "Linux " + cstr(u.Version[:])
}

func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
