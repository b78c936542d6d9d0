package books

// Book is the flattened catalog view the API exposes, reshaped from the
// upstream volume payload.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty"`
	Description   string   `json:"description,omitempty"`
	Categories    []string `json:"categories"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	ISBN13        string   `json:"isbn13,omitempty"`
	ISBN10        string   `json:"isbn10,omitempty"`
}
