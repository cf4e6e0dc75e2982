package utils

const pageSizeDefault = 20
const pageSizeMax = 100

// PaginationBounds resolves optional offset/limit values into concrete query
// bounds. Missing or invalid values fall back to defaults; the limit is
// capped at pageSizeMax.
func PaginationBounds(offset *int, limit *int) (int, int) {
	resolvedOffset := 0
	resolvedLimit := pageSizeDefault

	if offset != nil && *offset >= 0 {
		resolvedOffset = *offset
	}

	if limit != nil && *limit > 0 {
		resolvedLimit = min(*limit, pageSizeMax)
	}

	return resolvedOffset, resolvedLimit
}
