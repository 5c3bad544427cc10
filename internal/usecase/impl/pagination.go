package impl

import (
	"strings"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/pkg/errors"
)

const (
	fallbackElementsPerPage    = 10
	fallbackMaxElementsPerPage = 100

	// filterAll disables a status, role or category filter.
	filterAll = "all"
)

// pager turns list query parameters into repository page requests.
type pager struct {
	defaultSize int
	maxSize     int
}

func newPager(cfg *config.Config) pager {
	p := pager{defaultSize: fallbackElementsPerPage, maxSize: fallbackMaxElementsPerPage}
	if cfg != nil && cfg.Pagination != nil {
		if cfg.Pagination.DefaultElementsPerPage > 0 {
			p.defaultSize = cfg.Pagination.DefaultElementsPerPage
		}
		if cfg.Pagination.MaxElementsPerPage >= p.defaultSize {
			p.maxSize = cfg.Pagination.MaxElementsPerPage
		}
	}

	return p
}

// request validates the input and clamps the page size. Without an explicit
// direction a sort field is ascending and the default order is newest first.
func (p pager) request(in usecase.PageInput) (entity.PageRequest, error) {
	if in.Page < 0 || in.ElementsPerPage < 0 {
		return entity.PageRequest{}, domainerrors.ErrValidationFailed.WithDetails("page and elementsPerPage must not be negative")
	}

	size := in.ElementsPerPage
	if size == 0 {
		size = p.defaultSize
	}
	size = min(size, p.maxSize)

	field := strings.TrimSpace(in.Filter)
	direction := entity.SortDirection(strings.ToLower(strings.TrimSpace(in.SortBy)))
	switch {
	case direction == "" && field == "":
		direction = entity.SortDesc
	case direction == "":
		direction = entity.SortAsc
	case !direction.IsValid():
		return entity.PageRequest{}, domainerrors.ErrValidationFailed.WithDetails("sortBy must be asc or desc")
	}

	return entity.PageRequest{
		Page:      in.Page,
		Size:      size,
		SortField: field,
		Direction: direction,
	}, nil
}

// translateListError maps repository criteria errors to client errors.
func translateListError(err error, msg string) error {
	if errors.Is(err, repository.ErrUnsupportedField) {
		return errors.Wrap(domainerrors.ErrInvalidSortField.WithDetails(err.Error()), msg)
	}

	return errors.Wrap(err, msg)
}

// dateRange parses inclusive YYYY-MM-DD bounds into a half-open interval.
// A missing from is the epoch and a missing to is the end of today.
func dateRange(in usecase.DateRangeInput, now time.Time) (from, to time.Time, err error) {
	from, to, _, err = util.ParseDayRange(strings.TrimSpace(in.From), strings.TrimSpace(in.To))
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(domainerrors.ErrInvalidDate.WithDetails(err.Error()), "invalid date range")
	}
	if from.IsZero() {
		from = time.Unix(0, 0).UTC()
	}
	if to.IsZero() {
		today := now.UTC().Truncate(24 * time.Hour)
		to = today.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, errors.Wrap(domainerrors.ErrInvalidDate.WithDetails("from must not be after to"), "invalid date range")
	}

	return from, to, nil
}

// isFilterSet reports whether a status-like filter value narrows the listing.
func isFilterSet(value string) bool {
	value = strings.TrimSpace(value)

	return value != "" && !strings.EqualFold(value, filterAll)
}
