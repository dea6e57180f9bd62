package proposal

// AcceptedRoute is where a Yes click navigates to.
const AcceptedRoute = "/yes"

// Home is the click counter owned by one proposal view session. The zero
// value is a fresh view.
type Home struct {
	clicks int
}

// Restore rebuilds a Home from a previously stored click count. Negative
// counts are treated as a fresh view.
func Restore(clicks int) *Home {
	if clicks < 0 {
		clicks = 0
	}
	return &Home{clicks: clicks}
}

// Clicks returns how many times No has been pressed.
func (h *Home) Clicks() int {
	return h.clicks
}

// Label is the current No-button text.
func (h *Home) Label() string {
	return LabelFor(h.clicks)
}

// FontSize is the current Yes-button size in em.
func (h *Home) FontSize() float64 {
	return SizeFor(h.clicks)
}

// FontSizeCSS is FontSize formatted as a CSS length.
func (h *Home) FontSizeCSS() string {
	return FormatEm(h.FontSize())
}

// NoClick records one press of the No button.
func (h *Home) NoClick() {
	h.clicks++
}

// YesClick returns the route to navigate to. The counter is left untouched;
// the caller tears the view down.
func (h *Home) YesClick() string {
	return AcceptedRoute
}
