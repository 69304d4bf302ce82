//go:build darwin

package input

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework ApplicationServices

#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <ApplicationServices/ApplicationServices.h>

// Check if we have accessibility permissions
bool hasAccessibilityPermissions() {
    return AXIsProcessTrusted();
}

CGPoint getCurrentMousePosition() {
    CGEventRef event = CGEventCreate(NULL);
    CGPoint cursor = CGEventGetLocation(event);
    CFRelease(event);
    return cursor;
}

size_t mainDisplayWidth() {
    return CGDisplayPixelsWide(CGMainDisplayID());
}

size_t mainDisplayHeight() {
    return CGDisplayPixelsHigh(CGMainDisplayID());
}

void postMouseEvent(CGEventType type, CGPoint pos, CGMouseButton button) {
    CGEventRef event = CGEventCreateMouseEvent(NULL, type, pos, button);
    CGEventPost(kCGSessionEventTap, event);
    CFRelease(event);
}

void injectMouseMoveTo(CGFloat x, CGFloat y) {
    postMouseEvent(kCGEventMouseMoved, CGPointMake(x, y), kCGMouseButtonLeft);
}

void injectMouseMoveBy(CGFloat dx, CGFloat dy) {
    CGPoint cur = getCurrentMousePosition();
    postMouseEvent(kCGEventMouseMoved, CGPointMake(cur.x + dx, cur.y + dy), kCGMouseButtonLeft);
}

// button: 1=left, 2=right
void injectMouseButton(int button, bool pressed) {
    CGMouseButton cgButton = button == 2 ? kCGMouseButtonRight : kCGMouseButtonLeft;
    CGEventType eventType;
    if (button == 2) {
        eventType = pressed ? kCGEventRightMouseDown : kCGEventRightMouseUp;
    } else {
        eventType = pressed ? kCGEventLeftMouseDown : kCGEventLeftMouseUp;
    }
    postMouseEvent(eventType, getCurrentMousePosition(), cgButton);
}
*/
import "C"

// macOS implementation of pointer injection using CoreGraphics.
// Absolute coordinates arrive in the normalized 0-65535 space and are mapped
// back onto the main display.

func sendInput(events []MouseEvent) (int, error) {
	if !bool(C.hasAccessibilityPermissions()) {
		return 0, &InjectionError{Reason: "accessibility permission not granted to this process"}
	}

	for _, ev := range events {
		if ev.Has(FlagMove) {
			if ev.Has(FlagAbsolute) {
				w := float64(C.mainDisplayWidth())
				h := float64(C.mainDisplayHeight())
				x := float64(ev.Dx) * w / NormalizedMax
				y := float64(ev.Dy) * h / NormalizedMax
				C.injectMouseMoveTo(C.CGFloat(x), C.CGFloat(y))
			} else {
				C.injectMouseMoveBy(C.CGFloat(ev.Dx), C.CGFloat(ev.Dy))
			}
		}

		switch {
		case ev.Has(FlagLeftDown):
			C.injectMouseButton(1, C.bool(true))
		case ev.Has(FlagLeftUp):
			C.injectMouseButton(1, C.bool(false))
		}
		switch {
		case ev.Has(FlagRightDown):
			C.injectMouseButton(2, C.bool(true))
		case ev.Has(FlagRightUp):
			C.injectMouseButton(2, C.bool(false))
		}
	}
	return len(events), nil
}
