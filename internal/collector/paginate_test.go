package collector

import (
	"context"
	"fmt"
	"time"
)

func (s *CollectorSuite) seedGroups(count int) {
	for i := 0; i < count; i++ {
		s.seedJournal(journalSpec{
			description: fmt.Sprintf("entry %02d", i+1),
			date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		})
	}
}

func (s *CollectorSuite) TestPaginationFirstPage() {
	s.seedGroups(5)

	page, err := s.collector().SetPage(1).SetPageSize(2).GetPaginatedGroups(context.Background())
	s.NoError(err)
	s.Equal(5, page.Total)
	s.Equal(3, page.TotalPages)
	s.Equal(1, page.Page)
	s.Equal(2, page.PageSize)
	s.Equal([]string{"entry 05", "entry 04"}, descriptions(page.Groups))
}

func (s *CollectorSuite) TestPaginationLastPageIsPartial() {
	s.seedGroups(5)

	page, err := s.collector().SetPage(3).SetPageSize(2).GetPaginatedGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"entry 01"}, descriptions(page.Groups))
}

func (s *CollectorSuite) TestPaginationPastTheEndIsEmpty() {
	s.seedGroups(3)

	page, err := s.collector().SetPage(5).SetPageSize(2).GetPaginatedGroups(context.Background())
	s.NoError(err)
	s.Empty(page.Groups)
	s.Equal(3, page.Total)
	s.Equal(2, page.TotalPages)
}

func (s *CollectorSuite) TestPaginationRejectsInvalidPage() {
	_, err := s.collector().SetPage(0).GetPaginatedGroups(context.Background())
	s.ErrorIs(err, ErrInvalidPage)
}

func (s *CollectorSuite) TestPaginationRejectsInvalidPageSize() {
	_, err := s.collector().SetPageSize(0).GetPaginatedGroups(context.Background())
	s.ErrorIs(err, ErrInvalidPageSize)
}

func (s *CollectorSuite) TestPaginationOfNoResults() {
	page, err := s.collector().SetPage(1).SetPageSize(10).GetPaginatedGroups(context.Background())
	s.NoError(err)
	s.Empty(page.Groups)
	s.Equal(0, page.Total)
	s.Equal(0, page.TotalPages)
}
