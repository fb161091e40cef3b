package user

// User is the admin view of a storefront account.
type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Pagination is the paging envelope the backend returns with user listings.
type Pagination struct {
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
	Total   int  `json:"total"`
}

// Page is one page of users.
type Page struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

// Filters narrow the admin user listing.
type Filters struct {
	Status string
	Search string
	Page   int
	Limit  int
}
