package repository

import (
	"strings"

	"github.com/ManuelReschke/FoxBlog/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscape is portable across MySQL, PostgreSQL and SQLite. A backslash
// would need different quoting per dialect.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// containsPattern builds a LIKE pattern matching s anywhere. Case folding is
// left to the database (LOWER on both sides), so the column and the pattern
// are folded by the same rules on every driver.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

const (
	titleContains       = "LOWER(title) LIKE LOWER(?) ESCAPE '" + likeEscape + "'"
	titleOrBodyContains = "(LOWER(title) LIKE LOWER(?) ESCAPE '" + likeEscape + "' OR LOWER(body) LIKE LOWER(?) ESCAPE '" + likeEscape + "')"
)

// postRepository implements the PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// newestFirst applies the default listing order
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

func published(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true)
}

// Create creates a new post in the database. The author association is
// never written through the post.
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Omit(clause.Associations).Create(post).Error
}

// GetByID retrieves a post by its ID regardless of its publication state
func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublishedByID retrieves a published post by its ID
func (r *postRepository) GetPublishedByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Scopes(published).Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublished retrieves published posts, newest first, with pagination
func (r *postRepository) GetPublished(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Scopes(published, newestFirst).
		Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// CountPublished returns the number of published posts
func (r *postRepository) CountPublished() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Scopes(published).Count(&count).Error
	return count, err
}

// SearchPublishedByTitle finds published posts whose title contains query,
// ignoring case
func (r *postRepository) SearchPublishedByTitle(query string, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Scopes(published, newestFirst).
		Where(titleContains, containsPattern(query)).
		Limit(limit).Find(&posts).Error
	return posts, err
}

// GetAll retrieves all posts for the administrative listing
func (r *postRepository) GetAll(filter PostFilter) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.Preload("Author").Scopes(newestFirst)
	if filter.Published != nil {
		q = q.Where("is_published = ?", *filter.Published)
	}
	if filter.AuthorID != 0 {
		q = q.Where("user_id = ?", filter.AuthorID)
	}
	if filter.Query != "" {
		pattern := containsPattern(filter.Query)
		q = q.Where(titleOrBodyContains, pattern, pattern)
	}
	if !filter.CreatedAfter.IsZero() {
		q = q.Where("created_at >= ?", filter.CreatedAfter)
	}
	err := q.Find(&posts).Error
	return posts, err
}

// Update saves all fields of an existing post; updated_at is refreshed by GORM
func (r *postRepository) Update(post *models.Post) error {
	return r.db.Omit(clause.Associations).Save(post).Error
}

// SetPublished flips the publication flag of a single post
func (r *postRepository) SetPublished(id uint, published bool) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).Update("is_published", published).Error
}

// Delete removes a post permanently
func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// Count returns the total number of posts, published or not
func (r *postRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}
