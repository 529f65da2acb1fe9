package dto

import (
	"html/template"

	"github.com/BlogStand/blog-service/internal/model"
)

// PostView is the template-facing shape of a post. Body is trusted rich text
// entered by the operator and is rendered unescaped.
type PostView struct {
	ID       int64
	Title    string
	Subtitle string
	Date     string
	Author   string
	ImageURL string
	Body     template.HTML
}

func NewPostView(post model.Post) PostView {
	return PostView{
		ID:       post.ID,
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Date:     post.Date,
		Author:   post.Author,
		ImageURL: post.ImageURL,
		Body:     template.HTML(post.Body),
	}
}

func NewPostViews(posts []*model.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, NewPostView(*post))
	}
	return views
}
