package blog

import (
	"github.com/stretchr/testify/mock"

	"github.com/ManuelReschke/FoxBlog/app/models"
	"github.com/ManuelReschke/FoxBlog/app/repository"
)

type mockPostRepository struct {
	mock.Mock
}

var _ repository.PostRepository = (*mockPostRepository)(nil)

func (m *mockPostRepository) Create(post *models.Post) error {
	return m.Called(post).Error(0)
}

func (m *mockPostRepository) GetByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	post, _ := args.Get(0).(*models.Post)
	return post, args.Error(1)
}

func (m *mockPostRepository) GetPublishedByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	post, _ := args.Get(0).(*models.Post)
	return post, args.Error(1)
}

func (m *mockPostRepository) GetPublished(offset, limit int) ([]models.Post, error) {
	args := m.Called(offset, limit)
	posts, _ := args.Get(0).([]models.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepository) CountPublished() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostRepository) SearchPublishedByTitle(query string, limit int) ([]models.Post, error) {
	args := m.Called(query, limit)
	posts, _ := args.Get(0).([]models.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepository) GetAll(filter repository.PostFilter) ([]models.Post, error) {
	args := m.Called(filter)
	posts, _ := args.Get(0).([]models.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepository) Update(post *models.Post) error {
	return m.Called(post).Error(0)
}

func (m *mockPostRepository) SetPublished(id uint, published bool) error {
	return m.Called(id, published).Error(0)
}

func (m *mockPostRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockPostRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
