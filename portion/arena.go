package portion

// DefaultPageSize is the number of elements an Arena allocates per page, unless
// told otherwise.
const DefaultPageSize = 4096

// Arena owns backing storage for portions. It hands out portions over pages which
// are never moved or resized, so portions stay valid for the lifetime of the arena.
//
// An empty Arena is usable and allocates pages of DefaultPageSize elements.
type Arena[T any] struct {
	pages     [][]T
	free      []T
	pageSize  int
	allocated int
}

// NewArena creates an arena allocating pages of pageSize elements. Requests larger
// than a page get a page of their own.
func NewArena[T any](pageSize int) *Arena[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Arena[T]{pageSize: pageSize}
}

// Alloc returns a ranged portion over n fresh zero-valued elements.
func (a *Arena[T]) Alloc(n int) Portion[T] {
	assertThat(n >= 0, "arena: negative allocation %d", n)
	buf := a.carve(n)
	return Range(buf, 0, n)
}

// From copies values into fresh arena storage and returns a portion over them.
func (a *Arena[T]) From(values ...T) Portion[T] {
	buf := a.carve(len(values))
	copy(buf, values)
	return Range(buf, 0, len(values))
}

// Cell allocates a single cell initialized to value. The cell may be shared by any
// number of broadcast portions and composite views as their default value.
func (a *Arena[T]) Cell(value T) *T {
	buf := a.carve(1)
	buf[0] = value
	return &buf[0]
}

// Allocated returns the number of elements handed out so far.
func (a *Arena[T]) Allocated() int {
	return a.allocated
}

// Pages returns the number of pages the arena holds.
func (a *Arena[T]) Pages() int {
	return len(a.pages)
}

func (a *Arena[T]) carve(n int) []T {
	if a.pageSize <= 0 {
		a.pageSize = DefaultPageSize
	}
	if n > len(a.free) {
		size := a.pageSize
		if n > size {
			size = n
		}
		page := make([]T, size)
		tracer().Debugf("arena: new page of %d elements", size)
		a.pages = append(a.pages, page)
		if n == size { // dedicated page; keep the remainder of the current page
			a.allocated += n
			return page[:n:n]
		}
		a.free = page
	}
	buf := a.free[:n:n]
	a.free = a.free[n:]
	a.allocated += n
	return buf
}
