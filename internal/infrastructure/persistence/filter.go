package persistence

import (
	"strings"

	"github.com/baletrack/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyFilter applies pagination and ordering on top of the filter criteria.
// defaultOrder is used when the filter carries no explicit ordering.
func applyFilter(query *gorm.DB, filter shared.Filter, defaultOrder string) *gorm.DB {
	query = applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else if defaultOrder != "" {
		query = query.Order(defaultOrder)
	}

	return query
}

// applyFilterWithoutPagination applies only the filter criteria, for counts
func applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "grade":
			query = query.Where("grade = ?", value)
		case "role":
			query = query.Where("role = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}
