package model

type Post struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Date     string `json:"date"`
	Body     string `json:"body"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url"`
}
