package repository

import "errors"

var (
	// ErrNotFound запись не найдена
	ErrNotFound = errors.New("record not found")
)

// paginate возвращает срез записей с учетом skip и limit
func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}

	end := skip + limit
	if end > len(items) {
		end = len(items)
	}

	return items[skip:end]
}
