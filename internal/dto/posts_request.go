package dto

type CreatePostRequest struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	Author   string `form:"author" binding:"required"`
	ImageURL string `form:"img_url" binding:"required,url"`
	Body     string `form:"body" binding:"required"`
}

type EditPostRequest struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	Author   string `form:"author" binding:"required"`
	ImageURL string `form:"img_url" binding:"required,url"`
	Body     string `form:"body" binding:"required"`
}
