package domain

const unknownDescription = "Unknown"

// Mode identifies which editing surface is authoritative.
type Mode string

// Available editing modes.
const (
	// ModeRendered edits the formatted document; commands take visual effect.
	ModeRendered Mode = "rendered"

	// ModeSource edits the raw HTML text; formatting commands are unavailable.
	ModeSource Mode = "source"
)

// IsValid returns true if the mode is recognised.
func (m Mode) IsValid() bool {
	return m == ModeRendered || m == ModeSource
}

// Other returns the mode a toggle switches to.
func (m Mode) Other() Mode {
	if m == ModeSource {
		return ModeRendered
	}
	return ModeSource
}

// String returns the string representation.
func (m Mode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m Mode) Description() string {
	switch m {
	case ModeRendered:
		return "Rendered (formatted editing)"
	case ModeSource:
		return "Source (raw HTML)"
	default:
		return unknownDescription
	}
}

// Flavor identifies the rendering engine family behind a rendered surface.
// Each family emits its own markup quirks for the same command.
type Flavor string

// Known engine flavours.
const (
	// FlavorGecko emits legacy presentational tags (<b>, <i>, <br>).
	FlavorGecko Flavor = "gecko"

	// FlavorWebKit wraps CSS styling in Apple-style-span spans.
	FlavorWebKit Flavor = "webkit"

	// FlavorTrident has no styleWithCSS support and emits upper-case tags.
	FlavorTrident Flavor = "trident"
)

// IsValid returns true if the flavour is recognised.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorGecko, FlavorWebKit, FlavorTrident:
		return true
	default:
		return false
	}
}

// SupportsStyleWithCSS reports whether the engine understands the
// styleWithCSS compatibility command.
func (f Flavor) SupportsStyleWithCSS() bool {
	return f != FlavorTrident
}

// String returns the string representation.
func (f Flavor) String() string {
	return string(f)
}

// AllFlavors returns every known flavour in display order.
func AllFlavors() []Flavor {
	return []Flavor{FlavorGecko, FlavorWebKit, FlavorTrident}
}
