package service

import "healthtrack/internal/repository"

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ClampPage normalizes a requested page number: anything below 1 becomes 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampLimit normalizes a requested page size into [1, 100]; zero and
// negative values fall back to the default.
func ClampLimit(limit int) int {
	if limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// pageWindow converts clamped page/limit into the repository skip/take pair.
func pageWindow(page, limit int) repository.Page {
	page = ClampPage(page)
	limit = ClampLimit(limit)
	return repository.Page{Skip: (page - 1) * limit, Limit: limit}
}
