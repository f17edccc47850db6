package anim

// Target is the capability a host element exposes to be animated.
//
// SetProperty is called from the scheduler goroutine, so implementations
// that are also read by a render loop must synchronize internally.
type Target interface {
	SetProperty(name string, value any) error
	// GetProperty is only consulted when a Highlight starts, to capture the
	// value it restores.
	GetProperty(name string) (any, bool)
	// Exists reports whether the element is still alive. A false result
	// cancels the animation instead of failing it.
	Exists() bool
}

// Property names written by the built-in kinds.
const (
	PropOpacity     = "opacity"
	PropScale       = "scale"
	PropX           = "x"
	PropY           = "y"
	PropBorderColor = "border_color"
	PropOffsetY     = "offset_y"
)
