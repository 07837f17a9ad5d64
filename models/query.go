package models

import (
	"fmt"
	"math"
	"strings"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ListParams carries coerced pagination bounds. Page and Limit are the
// only query inputs ever inlined into SQL, so Normalize must run before
// either is used.
type ListParams struct {
	Page  int
	Limit int
}

func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p ListParams) TotalPages(total int64) int {
	return int(math.Ceil(float64(total) / float64(p.Limit)))
}

// OrderClause builds an ORDER BY fragment from user-supplied sort
// inputs. Unrecognized columns silently fall back to the default
// column; anything other than ASC becomes DESC. Nothing user-supplied
// reaches the SQL text verbatim.
func OrderClause(sortBy string, sortOrder string, allowed []string, fallback string) string {
	column := fallback
	for _, name := range allowed {
		if sortBy == name {
			column = name
			break
		}
	}
	order := "DESC"
	if strings.EqualFold(sortOrder, "ASC") {
		order = "ASC"
	}
	return fmt.Sprintf("%s %s", column, order)
}
