package common

// Virtual key codes for the walkthrough navigation bindings.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW = 87 // W key (ASCII) - move forward
	KeyA = 65 // A key (ASCII) - strafe left
	KeyS = 83 // S key (ASCII) - move backward
	KeyD = 68 // D key (ASCII) - strafe right
	KeyQ = 81 // Q key (ASCII) - descend
	KeyE = 69 // E key (ASCII) - ascend
	KeyR = 82 // R key (ASCII) - increase walk speed
	KeyF = 70 // F key (ASCII) - decrease walk speed
	KeyT = 84 // T key (ASCII) - increase mouse sensitivity
	KeyG = 71 // G key (ASCII) - decrease mouse sensitivity
	KeyX = 88 // X key (ASCII) - toggle mouse freeze
	KeyC = 67 // C key (ASCII) - toggle elevation lock
	KeyV = 86 // V key (ASCII) - fit all objects to view

	KeyEsc = 256 // Escape key (GLFW) - end the walkthrough session
)
