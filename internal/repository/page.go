package repository

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Page is an offset/limit window over a list endpoint. Number is
// 1-based.
type Page struct {
	Number int
	Size   int
}

func (p Page) Normalized() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

func (p Page) Offset() int { return (p.Number - 1) * p.Size }
