package pageslots

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction of the paginated dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}

var ErrEmptySort = errors.New("empty sort list")

type (
	// Sort is a multi-column ordering. Numbered pages are only stable under a
	// deterministic ordering, so the last key should be a unique column.
	Sort    []SortKey
	SortKey struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps external column aliases to column names used in SQL.
	// Key is an external alias, value is an internal column name.
	ColumnMapping = map[ColumnAlias]string
)

var _columnNameSymbols = append([]rune("_.`\""), lo.AlphanumericCharset...)

func (k SortKey) String() string {
	return fmt.Sprintf("%s %s", k.Column, k.Direction)
}

func (k SortKey) validate() error {
	if !k.Direction.Valid() {
		return fmt.Errorf("invalid sort direction '%s'", k.Direction)
	}

	// Column names end up in raw SQL.
	if k.Column == "" || !lo.Every(_columnNameSymbols, []rune(k.Column)) {
		return fmt.Errorf("sort column name contains forbidden symbols '%s'", k.Column)
	}

	return nil
}

// ToSQL joins the keys into an ORDER BY body, e.g. "age DESC, id ASC".
func (s Sort) ToSQL() string {
	return strings.Join(lo.Map(s, func(k SortKey, _ int) string { return k.String() }), ", ")
}

// Apply adds the ordering to a gorm query.
func (s Sort) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(s.ToSQL())
}

// with appends keys, dropping an earlier key on the same column.
func (s Sort) with(keys ...SortKey) Sort {
	for _, k := range keys {
		s = lo.Reject(s, func(prev SortKey, _ int) bool { return prev.Column == k.Column })
		s = append(s, k)
	}

	return s
}

func (s Sort) validate() error {
	if len(s) == 0 {
		return ErrEmptySort
	}

	for _, k := range s {
		if err := k.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds a Sort from strings of the form "alias" or
// "alias asc|desc". A bare alias sorts ascending. Aliases are resolved via
// columnMapping; an unknown alias is reported with the closest known one.
func ParseSort(rawKeys []string, columnMapping ColumnMapping) (Sort, error) {
	ret := make(Sort, 0, len(rawKeys))
	aliases := lo.Keys(columnMapping)

	for _, rawKey := range rawKeys {
		fields := strings.Fields(rawKey)
		if len(fields) == 0 || len(fields) > 2 {
			return nil, fmt.Errorf("invalid sort string format '%s'", rawKey)
		}

		direction := DirectionASC
		if len(fields) == 2 {
			direction = Direction(strings.ToUpper(fields[1]))
		}
		if !direction.Valid() {
			return nil, fmt.Errorf("invalid sort direction '%s'", fields[1])
		}

		column, ok := columnMapping[fields[0]]
		if !ok || column == "" {
			return nil, fmt.Errorf("invalid column alias '%s'. closest: '%s'", fields[0], closestAlias(fields[0], aliases))
		}

		ret = ret.with(SortKey{Column: column, Direction: direction})
	}

	return ret, nil
}

func closestAlias(input ColumnAlias, known []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	for _, alias := range known {
		dist := levenshtein([]rune(alias), []rune(input))
		if dist < minDist || (dist == minDist && alias < closest) {
			minDist = dist
			closest = alias
		}
	}

	return closest
}
