package pagination

import "strconv"

// Page is one page of a numbered listing. Numbers are 1-indexed.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int64
	TotalPages int
}

// NumPages returns the number of pages needed for total items. An empty
// listing still has one (empty) page.
func NumPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Clamp moves number into [1, numPages]
func Clamp(number, numPages int) int {
	if numPages < 1 {
		numPages = 1
	}
	if number < 1 {
		return 1
	}
	if number > numPages {
		return numPages
	}
	return number
}

// ParseNumber reads a page number from a query parameter. Anything that is
// not an integer selects the first page.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}

// Offset returns the row offset of a 1-indexed page
func Offset(number, size int) int {
	if number < 1 {
		return 0
	}
	return (number - 1) * size
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page[T]) PreviousNumber() int {
	return p.Number - 1
}

func (p Page[T]) NextNumber() int {
	return p.Number + 1
}

// Numbers lists every page number, for rendering page links
func (p Page[T]) Numbers() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
