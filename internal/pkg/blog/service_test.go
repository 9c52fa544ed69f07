package blog

import (
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ManuelReschke/FoxBlog/app/models"
	"github.com/ManuelReschke/FoxBlog/app/repository"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/database"
)

var day1 = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	repos  *repository.Repositories
	author *models.User
	svc    *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.OpenInMemory(nil)
	require.NoError(t, err)

	repos := repository.NewRepositories(db)
	author := &models.User{Name: "alice", Email: "alice@example.com", Password: "x", Role: models.ROLE_ADMIN}
	require.NoError(t, repos.User.Create(author))

	return &fixture{repos: repos, author: author, svc: NewService(repos.Post)}
}

func (f *fixture) add(t *testing.T, title string, published bool, createdAt time.Time) *models.Post {
	t.Helper()

	p := &models.Post{
		Title:       title,
		Body:        "Body of " + title,
		UserID:      f.author.ID,
		IsPublished: published,
		CreatedAt:   createdAt,
	}
	require.NoError(t, f.repos.Post.Create(p))
	return p
}

func TestService_ListRecentHidesUnpublished(t *testing.T) {
	f := newFixture(t)
	a := f.add(t, "A", true, day1)
	f.add(t, "B", false, day1.Add(24*time.Hour))

	got, err := f.svc.ListRecent(RecentLimit)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
}

func TestService_ListRecentRespectsLimitAndOrder(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 9; i++ {
		f.add(t, fmt.Sprintf("post %d", i), true, day1.Add(time.Duration(i)*time.Hour))
	}

	got, err := f.svc.ListRecent(RecentLimit)
	require.NoError(t, err)
	require.Len(t, got, RecentLimit)
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool {
		return got[i].CreatedAt.After(got[j].CreatedAt)
	}))
	assert.Equal(t, "post 8", got[0].Title)

	none, err := f.svc.ListRecent(0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_ListPagedClampsPageNumber(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 15; i++ {
		f.add(t, fmt.Sprintf("post %02d", i), true, day1.Add(time.Duration(i)*time.Hour))
	}
	f.add(t, "draft", false, day1.Add(100*time.Hour))

	tests := []struct {
		name       string
		page       int
		wantNumber int
		wantLen    int
		wantFirst  string
	}{
		{name: "first page", page: 1, wantNumber: 1, wantLen: 12, wantFirst: "post 14"},
		{name: "last page", page: 2, wantNumber: 2, wantLen: 3, wantFirst: "post 02"},
		{name: "beyond last clamps to last", page: 999, wantNumber: 2, wantLen: 3, wantFirst: "post 02"},
		{name: "zero clamps to first", page: 0, wantNumber: 1, wantLen: 12, wantFirst: "post 14"},
		{name: "negative clamps to first", page: -3, wantNumber: 1, wantLen: 12, wantFirst: "post 14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := f.svc.ListPaged(ExplorePageSize, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, 2, page.TotalPages)
			assert.Equal(t, int64(15), page.TotalItems)
			require.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, tt.wantFirst, page.Items[0].Title)
		})
	}
}

func TestService_ListPagedEmpty(t *testing.T) {
	f := newFixture(t)

	page, err := f.svc.ListPaged(ExplorePageSize, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestService_SearchByTitle(t *testing.T) {
	f := newFixture(t)
	f.add(t, "Hello World", true, day1)
	f.add(t, "hello there", true, day1.Add(time.Hour))
	f.add(t, "Goodbye", true, day1.Add(2*time.Hour))
	f.add(t, "Hello hidden", false, day1.Add(3*time.Hour))

	got, err := f.svc.SearchByTitle("Hello", SearchLimit)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hello there", got[0].Title)
	assert.Equal(t, "Hello World", got[1].Title)

	empty, err := f.svc.SearchByTitle("", SearchLimit)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestService_SearchByTitleCapsResults(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 12; i++ {
		f.add(t, fmt.Sprintf("match %d", i), true, day1.Add(time.Duration(i)*time.Minute))
	}

	got, err := f.svc.SearchByTitle("match", SearchLimit)
	require.NoError(t, err)
	assert.Len(t, got, SearchLimit)
}

func TestService_GetByID(t *testing.T) {
	f := newFixture(t)
	pub := f.add(t, "Public", true, day1)
	draft := f.add(t, "Draft", false, day1)

	got, err := f.svc.GetByID(pub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Public", got.Title)
	assert.Equal(t, "alice", got.AuthorName())

	_, err = f.svc.GetByID(draft.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.GetByID(draft.ID + 100)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_LatestTopics(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 11; i++ {
		f.add(t, fmt.Sprintf("topic %d", i), true, day1.Add(time.Duration(i)*time.Hour))
	}
	f.add(t, "secret", false, day1.Add(50*time.Hour))

	got, err := f.svc.LatestTopics(LatestTopicsLimit)
	require.NoError(t, err)
	require.Len(t, got, LatestTopicsLimit)
	assert.Equal(t, "topic 10", got[0].Title)
	for _, p := range got {
		assert.True(t, p.IsPublished)
	}
}

func TestService_RepositoryErrorsAreWrapped(t *testing.T) {
	dbErr := errors.New("connection refused")

	repo := new(mockPostRepository)
	repo.On("GetPublished", 0, RecentLimit).Return(nil, dbErr)
	repo.On("GetPublishedByID", uint(7)).Return(nil, dbErr)
	repo.On("CountPublished").Return(int64(0), dbErr)
	repo.On("SearchPublishedByTitle", "q", SearchLimit).Return(nil, dbErr)
	svc := NewService(repo)

	_, err := svc.ListRecent(RecentLimit)
	require.ErrorIs(t, err, dbErr)

	_, err = svc.GetByID(7)
	require.ErrorIs(t, err, dbErr)
	assert.False(t, errors.Is(err, ErrNotFound))

	_, err = svc.ListPaged(ExplorePageSize, 1)
	require.ErrorIs(t, err, dbErr)

	_, err = svc.SearchByTitle("q", SearchLimit)
	require.ErrorIs(t, err, dbErr)

	repo.AssertExpectations(t)
}

func TestService_GetByIDTranslatesRecordNotFound(t *testing.T) {
	repo := new(mockPostRepository)
	repo.On("GetPublishedByID", uint(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewService(repo).GetByID(3)

	require.ErrorIs(t, err, ErrNotFound)
	repo.AssertExpectations(t)
}

func TestService_EmptySearchNeverHitsTheStore(t *testing.T) {
	repo := new(mockPostRepository)

	got, err := NewService(repo).SearchByTitle("", SearchLimit)

	require.NoError(t, err)
	assert.Empty(t, got)
	repo.AssertNotCalled(t, "SearchPublishedByTitle")
}
