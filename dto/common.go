package dto

// Pagination carries the page parameters the backend forwards to the store
// unexamined beyond defaulting.
type Pagination struct {
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
	Sort  string `form:"sort"`
}

// Normalize applies the default page and limit for missing values.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > 100 {
		p.Limit = 20
	}
}

// Offset is the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
