package usecase

const (
	defaultPageSize = 50
	maxPageSize     = 1000
)

// clampPagination applies defaults and caps to pagination parameters.
func clampPagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
