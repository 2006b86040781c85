package pageslots

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type tUser struct {
	ID   uint
	Name string
}

var sqlMockFnList = []func() (string, *gorm.DB, sqlmock.Sqlmock, error){
	newGORMMySQLMock,
	newGORMPostgresMock,
}

func Test_Pager_Apply(t *testing.T) {
	tests := []struct {
		name          string
		pageSize      int
		page          int
		sort          Sort
		expectedQuery string
	}{
		{
			name:          "first page has no offset",
			pageSize:      10,
			page:          1,
			sort:          Sort{{Column: "id", Direction: DirectionASC}},
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"] ORDER BY id ASC LIMIT 10$",
		},
		{
			name:          "third page",
			pageSize:      10,
			page:          3,
			sort:          Sort{{Column: "id", Direction: DirectionASC}},
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"] ORDER BY id ASC LIMIT 10 OFFSET 20$",
		},
		{
			name:     "multi-column sort",
			pageSize: 5,
			page:     2,
			sort: Sort{
				{Column: "name", Direction: DirectionDESC},
				{Column: "id", Direction: DirectionASC},
			},
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"] ORDER BY name DESC, id ASC LIMIT 5 OFFSET 5$",
		},
	}

	for _, sqlMockFn := range sqlMockFnList {
		for _, tt := range tests {
			dialect, db, dbMock, err := sqlMockFn()
			t.Run(fmt.Sprintf("%s %s", dialect, tt.name), func(t *testing.T) {
				require.NoError(t, err, "gorm open")

				dbMock.ExpectQuery(tt.expectedQuery).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "John Doe"))

				p := NewPager().
					WithPageSize(tt.pageSize).
					WithPage(tt.page).
					WithSubstitutedSort(tt.sort...)

				paged, err := p.Apply(db.Table("users").Where("name = 'lol'"))
				require.NoError(t, err, "apply")

				require.NoError(t, paged.Find(&[]tUser{}).Error, "find")
				assert.NoError(t, dbMock.ExpectationsWereMet())
			})
		}
	}
}

func Test_Pager_Apply_InvalidSort(t *testing.T) {
	_, db, _, err := newGORMMySQLMock()
	require.NoError(t, err)

	_, err = NewPager().Apply(db.Table("users"))
	require.ErrorIs(t, err, ErrEmptySort)

	_, err = (*Pager)(nil).Apply(db.Table("users"))
	require.Error(t, err)
}

func Test_Paginate(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		requestedPage int
		expectedQuery string
		expectedPages Pages
		expectedCalls []int
	}{
		{
			name:          "middle page",
			total:         70,
			requestedPage: 3,
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"] ORDER BY id ASC LIMIT 10 OFFSET 20$",
			expectedPages: Pages{PageCount: 7, Page: 3, Slots: []Slot{1, 2, 3, 4, 5, 6, 7}},
			expectedCalls: nil,
		},
		{
			name:          "requested page beyond the dataset is clamped",
			total:         25,
			requestedPage: 9,
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"] ORDER BY id ASC LIMIT 10 OFFSET 20$",
			expectedPages: Pages{PageCount: 3, Page: 3, Slots: []Slot{1, 2, 3}},
			expectedCalls: []int{3},
		},
		{
			name:          "unset page selects the first one",
			total:         5,
			requestedPage: 0,
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"] ORDER BY id ASC LIMIT 10$",
			expectedPages: Pages{PageCount: 1, Page: 1, Slots: []Slot{1}},
			expectedCalls: []int{1},
		},
	}

	for _, sqlMockFn := range sqlMockFnList {
		for _, tt := range tests {
			dialect, db, dbMock, err := sqlMockFn()
			t.Run(fmt.Sprintf("%s %s", dialect, tt.name), func(t *testing.T) {
				require.NoError(t, err, "gorm open")

				dbMock.ExpectQuery("^SELECT count\\(\\*\\) FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"]$").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.total))
				dbMock.ExpectQuery(tt.expectedQuery).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(21, "John Doe").AddRow(22, "Jane Doe"))

				var calls []int
				p := NewPager().
					WithPage(tt.requestedPage).
					WithOnPageChange(func(page int) { calls = append(calls, page) }).
					WithSort(SortKey{Column: "id", Direction: DirectionASC})

				res, err := Paginate[tUser](db.Table("users").Where("name = 'lol'"), p)
				require.NoError(t, err)

				assert.Equal(t, int64(tt.total), res.Total)
				assert.Equal(t, tt.expectedPages, res.Pages)
				assert.Equal(t, []tUser{{ID: 21, Name: "John Doe"}, {ID: 22, Name: "Jane Doe"}}, res.Items)
				assert.Equal(t, tt.total, p.GetConfig().CollectionSize)
				assert.Equal(t, tt.expectedCalls, calls)
				assert.NoError(t, dbMock.ExpectationsWereMet())
			})
		}
	}
}

func Test_Paginate_EmptyDataset(t *testing.T) {
	for _, sqlMockFn := range sqlMockFnList {
		dialect, db, dbMock, err := sqlMockFn()
		t.Run(dialect, func(t *testing.T) {
			require.NoError(t, err, "gorm open")

			dbMock.ExpectQuery("^SELECT count\\(\\*\\) FROM [`'\"]users[`'\"]$").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

			p := NewPager().WithPage(4).WithSort(SortKey{Column: "id", Direction: DirectionASC})

			res, err := Paginate[tUser](db.Table("users"), p)
			require.NoError(t, err)

			assert.Equal(t, int64(0), res.Total)
			assert.Empty(t, res.Items)
			assert.Equal(t, Pages{PageCount: 0, Page: 1, Slots: []Slot{}}, res.Pages)
			assert.NoError(t, dbMock.ExpectationsWereMet())
		})
	}
}

func Test_Paginate_Errors(t *testing.T) {
	dbErr := errors.New("connection reset")

	t.Run("nil pager", func(t *testing.T) {
		_, db, _, err := newGORMMySQLMock()
		require.NoError(t, err)

		_, err = Paginate[tUser](db.Table("users"), nil)
		require.Error(t, err)
	})

	t.Run("missing sort", func(t *testing.T) {
		_, db, _, err := newGORMMySQLMock()
		require.NoError(t, err)

		_, err = Paginate[tUser](db.Table("users"), NewPager())
		require.ErrorIs(t, err, ErrEmptySort)
	})

	t.Run("count fails", func(t *testing.T) {
		_, db, dbMock, err := newGORMMySQLMock()
		require.NoError(t, err)

		dbMock.ExpectQuery("SELECT count").WillReturnError(dbErr)

		_, err = Paginate[tUser](db.Table("users"), NewPager().WithSort(SortKey{Column: "id", Direction: DirectionASC}))
		require.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "cannot count dataset")
	})

	t.Run("find fails", func(t *testing.T) {
		_, db, dbMock, err := newGORMMySQLMock()
		require.NoError(t, err)

		dbMock.ExpectQuery("SELECT count").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(30))
		dbMock.ExpectQuery("SELECT \\*").WillReturnError(dbErr)

		_, err = Paginate[tUser](db.Table("users"), NewPager().WithSort(SortKey{Column: "id", Direction: DirectionASC}))
		require.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "cannot load page 1")
	})
}
