// Package view holds the flat/inflated display state machine and the renderer contract it drives.
package view

// Mode selects which geometry and projection a frame uses.
type Mode int

const (
	Flat Mode = iota
	Inflated
)

func (m Mode) String() string {
	switch m {
	case Flat:
		return "flat"
	case Inflated:
		return "inflated"
	}
	return "unknown"
}

// Event is a request that may move the controller to another mode.
type Event int

const (
	ActivatePuffy Event = iota
)

func (e Event) String() string {
	switch e {
	case ActivatePuffy:
		return "activate-puffy"
	}
	return "unknown"
}

type transitionKey struct {
	from Mode
	on   Event
}

// transitions lists every defined edge. A reverse Inflated -> Flat edge would be one more entry.
var transitions = map[transitionKey]Mode{
	{Flat, ActivatePuffy}:     Inflated,
	{Inflated, ActivatePuffy}: Inflated,
}
