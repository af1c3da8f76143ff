package services

import "github.com/arifhn/socialbase/backend/internal/models"

// Pagination bounds shared by the post listing and feed endpoints.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PostPage is one slice of a paginated post listing. A page past the end
// carries an empty Posts slice, never an error.
type PostPage struct {
	Posts      []models.Post `json:"posts"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalItems int64         `json:"total_items"`
	TotalPages int           `json:"total_pages"`
}

// normalizePage clamps paging parameters to their documented bounds.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func newPostPage(posts []models.Post, page, pageSize int, total int64) *PostPage {
	if posts == nil {
		posts = []models.Post{}
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &PostPage{
		Posts:      posts,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
