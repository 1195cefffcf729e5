package handler

import (
	trackingapp "github.com/baletrack/backend/internal/application/tracking"
	"github.com/baletrack/backend/internal/interfaces/http/dto"
)

// TrackingListRequest carries listing query parameters for tracking
// entities.
type TrackingListRequest struct {
	dto.ListRequest
	Status string `form:"status"`
	Grade  string `form:"grade"`
}

func (r TrackingListRequest) toFilter() trackingapp.ListFilter {
	return trackingapp.ListFilter{
		Page:     r.Page,
		PageSize: r.PageSize,
		OrderBy:  r.OrderBy,
		OrderDir: r.OrderDir,
		Search:   r.Search,
		Status:   r.Status,
		Grade:    r.Grade,
	}
}

// pageMeta normalizes page and page size for response metadata, matching
// the defaults the application layer applies.
func pageMeta(r dto.ListRequest) (int, int) {
	page := r.Page
	if page < 1 {
		page = 1
	}
	pageSize := r.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}
