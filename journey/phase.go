package journey

// Phase represents the discrete stage of a journey.
type Phase string

const (
	// Setup is the phase between Configure and Start.
	Setup Phase = "setup"
	// Boarding covers the first moments after departure is requested.
	Boarding Phase = "boarding"
	// Departing is the slow pull out of the origin station.
	Departing Phase = "departing"
	// Cruising is the long middle stretch of the journey.
	Cruising Phase = "cruising"
	// Approaching is the deceleration into the destination.
	Approaching Phase = "approaching"
	// Arrived means the journey is complete.
	Arrived Phase = "arrived"

	// Paused, Suspended, and Cancelled are override phases. They pin the
	// journey regardless of progress until explicitly cleared.
	Paused    Phase = "paused"
	Suspended Phase = "suspended"
	Cancelled Phase = "cancelled"
)

// Progress boundaries for each normal phase. Bands are half-open on the
// low end.
const (
	boardingEnd    = 0.03
	departingEnd   = 0.12
	cruisingEnd    = 0.85
	approachingEnd = 0.97
)

// boardingCrawl scales display progress while boarding so the train
// barely moves before departure.
const boardingCrawl = 0.3

// phaseForProgress maps raw progress to the normal phase it implies.
func phaseForProgress(raw float64) Phase {
	switch {
	case raw < boardingEnd:
		return Boarding
	case raw < departingEnd:
		return Departing
	case raw < cruisingEnd:
		return Cruising
	case raw < approachingEnd:
		return Approaching
	default:
		return Arrived
	}
}

// easeProgress projects raw progress into the eased display value used for
// animation. Easing is banded per phase, and each band's output range picks
// up exactly where the previous band left off, so the display value is
// continuous across every phase boundary and reaches 1.0 exactly when raw
// progress does.
func easeProgress(raw float64) float64 {
	switch {
	case raw <= 0:
		return 0
	case raw < boardingEnd:
		return raw * boardingCrawl
	case raw < departingEnd:
		// quadratic ease-in from the boarding crawl up to cruising speed
		t := (raw - boardingEnd) / (departingEnd - boardingEnd)
		lo := boardingEnd * boardingCrawl

		return lo + (departingEnd-lo)*t*t
	case raw < cruisingEnd:
		return raw
	case raw < approachingEnd:
		// quadratic ease-out into the platform
		t := (raw - cruisingEnd) / (approachingEnd - cruisingEnd)
		u := 1 - (1-t)*(1-t)

		return cruisingEnd + (1-cruisingEnd)*u
	default:
		return 1
	}
}
