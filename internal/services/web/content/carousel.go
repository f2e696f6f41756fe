package content

// Carousel indexes a fixed-length ring of items.
type Carousel struct {
	Len int
}

// Clamp wraps any index, negative or past the end, into [0, Len). An empty
// carousel always yields 0.
func (c Carousel) Clamp(index int) int {
	if c.Len <= 0 {
		return 0
	}
	return ((index % c.Len) + c.Len) % c.Len
}

// Next returns the index after index, wrapping to 0 past the end.
func (c Carousel) Next(index int) int {
	return c.Clamp(c.Clamp(index) + 1)
}

// Prev returns the index before index, wrapping to the last item before 0.
func (c Carousel) Prev(index int) int {
	return c.Clamp(c.Clamp(index) - 1)
}

// Step moves one position in direction: "prev" goes back, anything else
// that is non-empty goes forward, and empty only wraps index.
func (c Carousel) Step(index int, direction string) int {
	switch direction {
	case "prev":
		return c.Prev(index)
	case "":
		return c.Clamp(index)
	default:
		return c.Next(index)
	}
}
