package postgres

import (
	"strings"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// columnMap whitelists the resource fields a repository exposes to criteria
// and sorting, keyed by field name.
type columnMap map[string]string

func (m columnMap) column(field string) (string, error) {
	col, ok := m[field]
	if !ok {
		return "", errors.Wrapf(repository.ErrUnsupportedField, "field %q", field)
	}

	return col, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching substr literally.
func containsPattern(substr string) string {
	return "%" + likeEscaper.Replace(substr) + "%"
}

// applyCriteria translates each predicate into a WHERE condition on its whitelisted column.
func applyCriteria(db *gorm.DB, criteria *repository.Criteria, columns columnMap) (*gorm.DB, error) {
	for _, p := range criteria.Predicates() {
		col, err := columns.column(p.Field)
		if err != nil {
			return nil, err
		}

		switch p.Op {
		case repository.OpEqual:
			db = db.Where(clause.Eq{Column: clause.Column{Name: col}, Value: p.Value})
		case repository.OpContains:
			substr, ok := p.Value.(string)
			if !ok {
				return nil, errors.Errorf("contains on %q needs a string", p.Field)
			}
			db = db.Where(clause.Expr{SQL: "? ILIKE ?", Vars: []any{clause.Column{Name: col}, containsPattern(substr)}})
		case repository.OpBetween:
			bounds, ok := p.Value.([2]time.Time)
			if !ok {
				return nil, errors.Errorf("between on %q needs a time range", p.Field)
			}
			if !bounds[0].IsZero() {
				db = db.Where(clause.Gte{Column: clause.Column{Name: col}, Value: bounds[0]})
			}
			if !bounds[1].IsZero() {
				db = db.Where(clause.Lt{Column: clause.Column{Name: col}, Value: bounds[1]})
			}
		default:
			return nil, errors.Errorf("unknown operator %q", p.Op)
		}
	}

	return db, nil
}

// applySort orders by the requested field, or defaultField when none is given.
// The primary key breaks ties so pages never overlap.
func applySort(db *gorm.DB, page entity.PageRequest, columns columnMap, defaultField string) (*gorm.DB, error) {
	field := page.SortField
	if field == "" {
		field = defaultField
	}
	col, err := columns.column(field)
	if err != nil {
		return nil, err
	}

	return db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: col}, Desc: page.Direction == entity.SortDesc},
		{Column: clause.Column{Name: "id"}},
	}}), nil
}

// findPage counts the rows of query, then loads the requested page of them
// with the given associations preloaded. query must already carry its model
// and conditions.
func findPage[M any](query *gorm.DB, page entity.PageRequest, columns columnMap, defaultField string, preloads ...string) ([]*M, int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count rows")
	}

	ordered, err := applySort(query, page, columns, defaultField)
	if err != nil {
		return nil, 0, err
	}

	for _, association := range preloads {
		ordered = ordered.Preload(association)
	}

	var rows []*M
	if total > 0 {
		if err := ordered.Offset(page.Offset()).Limit(page.Size).Find(&rows).Error; err != nil {
			return nil, 0, errors.Wrap(err, "failed to load page")
		}
	}

	return rows, total, nil
}

// mapRows converts loaded rows to domain entities.
func mapRows[M, E any](rows []*M, fn func(*M) *E) []*E {
	out := make([]*E, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}

	return out
}
