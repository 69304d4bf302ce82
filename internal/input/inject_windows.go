//go:build windows

package input

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Windows implementation of pointer injection using SendInput

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const INPUT_MOUSE = 0

// MOUSEINPUT is the largest member of the INPUT union, so INPUT needs no
// trailing padding.
type MOUSEINPUT struct {
	Dx          int32
	Dy          int32
	MouseData   uint32
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

type INPUT struct {
	Type uint32
	Mi   MOUSEINPUT
}

func sendInput(events []MouseEvent) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	inputs := make([]INPUT, len(events))
	for i, ev := range events {
		inputs[i].Type = INPUT_MOUSE
		inputs[i].Mi.Dx = ev.Dx
		inputs[i].Mi.Dy = ev.Dy
		inputs[i].Mi.DwFlags = uint32(ev.Flags)
	}

	ret, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if ret == 0 {
		injErr := &InjectionError{Reason: "SendInput rejected the batch"}
		if errno, ok := err.(windows.Errno); ok && errno != 0 {
			injErr.Code = uint32(errno)
			injErr.Reason = errno.Error()
		}
		return 0, injErr
	}
	return int(ret), nil
}
