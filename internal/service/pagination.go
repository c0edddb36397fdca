package service

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// pageWindow translates 1-based page/limit query values into an offset
// window. Page values below 1 are clamped to the first page; a zero limit
// selects the default page size and oversized limits are capped.
func pageWindow(page, limit uint64) (skip, size uint64) {
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return (page - 1) * limit, limit
}
