package banner

// BannerItem is a hero slide for the top carousel, read-only from this
// service's perspective. JSON tags match the content API documents.
type BannerItem struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image"`
	MobileImage string   `json:"mobileImage,omitempty"`
	Badge       string   `json:"badge"`
	ButtonText  string   `json:"buttonText"`
	Link        string   `json:"link"`
	Features    []string `json:"features,omitempty"`
}
