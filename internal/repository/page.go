package repository

// Page bounds a list query with an offset and a limit.
type Page struct {
	Offset int
	Limit  int
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// normalize clamps negative offsets to zero and caps the limit. An offset
// past the end of the result set yields an empty page, never an error.
func (p Page) normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = defaultListLimit
	}
	if p.Limit > maxListLimit {
		p.Limit = maxListLimit
	}
	return p
}
