package app

// Event is an input delivered by the host. The host translates its own event types into these.
type Event interface{ isEvent() }

// KeyPress is a key identified by a host-neutral name such as "p", "[" or "left".
type KeyPress struct{ Key string }

// PointerMove reports the pointer position in host pixels.
type PointerMove struct{ X, Y float32 }

// PointerButton reports the primary button going down or up.
type PointerButton struct{ Down bool }

// Scroll is a wheel delta; positive moves the camera closer.
type Scroll struct{ Delta float32 }

func (KeyPress) isEvent()      {}
func (PointerMove) isEvent()   {}
func (PointerButton) isEvent() {}
func (Scroll) isEvent()        {}

// Keys the core reacts to.
const (
	KeyPuffy       = "p"
	KeyPuffyUpper  = "P"
	KeyMorePuffy   = "]"
	KeyLessPuffy   = "["
	KeyResetCamera = "r"
	KeyOrbitLeft   = "left"
	KeyOrbitRight  = "right"
	KeyOrbitUp     = "up"
	KeyOrbitDown   = "down"
	KeyZoomIn      = "+"
	KeyZoomOut     = "-"
)

// orbitStep is the pointer distance one arrow key press stands for.
const orbitStep = 10
