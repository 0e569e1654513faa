package models

type NewsArticle struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Date     string `json:"date"`
	ImageURL string `json:"image_url,omitempty"`
	Content  string `json:"content,omitempty"`
}
