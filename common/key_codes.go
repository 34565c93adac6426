package common

// Key is a virtual key code. Values match GLFW key codes, which use ASCII for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key uint32

// MouseButton is a mouse button index. Values match GLFW mouse button numbers.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
type MouseButton uint8

const (
	KeyW     Key = 87  // W key (ASCII)
	KeyA     Key = 65  // A key (ASCII)
	KeyS     Key = 83  // S key (ASCII)
	KeyD     Key = 68  // D key (ASCII)
	KeyQ     Key = 81  // Q key (ASCII)
	KeyE     Key = 69  // E key (ASCII)
	KeyR     Key = 82  // R key (ASCII)
	KeyX     Key = 88  // X key (ASCII)
	KeyZ     Key = 90  // Z key (ASCII)
	KeySpace Key = 32  // Spacebar (ASCII)
	KeyTab   Key = 258 // Tab key (GLFW)
	KeyEsc   Key = 256 // Escape key (GLFW)

	Key1 Key = 49 // 1 key (ASCII)
	Key2 Key = 50 // 2 key (ASCII)
)

// Additional non-printable keys
const (
	KeyLeftShift  Key = 340 // Left Shift (GLFW)
	KeyRightShift Key = 344 // Right Shift (GLFW)
)

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// MaxKey bounds the key table used by input tracking. GLFW's highest key code is 348 (Menu).
const MaxKey Key = 349

// MaxMouseButton bounds the mouse button table. GLFW defines buttons 0 through 7.
const MaxMouseButton MouseButton = 8
