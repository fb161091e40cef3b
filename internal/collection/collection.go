package collection

import (
	"encoding/json"
	"errors"
)

// ProductRef is either a product id or a populated product object, depending
// on how the backend answered. The console passes it through untouched.
type ProductRef = json.RawMessage

// Collection is a named, ordered, togglable group of products shown as a
// homepage section. JSON tags match the content API documents.
type Collection struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug,omitempty"`
	Description string       `json:"description,omitempty"`
	Products    []ProductRef `json:"products"`
	IsActive    bool         `json:"isActive"`
	Position    int          `json:"position"`
}

// ErrNameRequired is returned when a create or update carries an empty name.
// It is raised before any network call.
var ErrNameRequired = errors.New("collection name is required")
