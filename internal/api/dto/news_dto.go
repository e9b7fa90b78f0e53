package dto

import "github.com/viet-college/department-cms/internal/domain"

// NewsCreateRequest is the admin payload for a new article.
type NewsCreateRequest struct {
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	ImageURL  string `json:"imageUrl"`
	Published *bool  `json:"published"`
}

func (r NewsCreateRequest) Validate() map[string]any {
	details := map[string]any{}
	if r.Title == "" {
		details["title"] = "required"
	}
	if r.Content == "" {
		details["content"] = "required"
	}
	return details
}

func (r NewsCreateRequest) ToDomain() *domain.News {
	article := &domain.News{
		Title:    r.Title,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
		ImageURL: r.ImageURL,
	}
	if r.Published != nil {
		article.Published = *r.Published
	}
	return article
}

// NewsUpdateRequest carries a partial update; nil fields stay untouched.
type NewsUpdateRequest struct {
	Title     *string `json:"title"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	Published *bool   `json:"published"`
}

func (r NewsUpdateRequest) Apply(article *domain.News) {
	if r.Title != nil {
		article.Title = *r.Title
	}
	if r.Excerpt != nil {
		article.Excerpt = *r.Excerpt
	}
	if r.Content != nil {
		article.Content = *r.Content
	}
	if r.ImageURL != nil {
		article.ImageURL = *r.ImageURL
	}
	if r.Published != nil {
		article.Published = *r.Published
	}
}
