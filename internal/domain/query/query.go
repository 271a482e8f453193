package query

// Pagination carries limit/offset list options shared by repositories.
type Pagination struct {
	Limit  *int
	Offset *int
	Order  string
}

// Bounded returns limit/offset with defaults applied.
func (p *Pagination) Bounded(defaultLimit, maxLimit int) (int, int) {
	limit := defaultLimit
	offset := 0
	if p != nil {
		if p.Limit != nil && *p.Limit > 0 {
			limit = *p.Limit
		}
		if p.Offset != nil && *p.Offset > 0 {
			offset = *p.Offset
		}
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit, offset
}
