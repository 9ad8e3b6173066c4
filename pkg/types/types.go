// Package domain defines the core business types for opty-search.
package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// SearchQuery is the raw free-text query typed by a shopper.
type SearchQuery string

// NormalizedQuery is the canonical search phrase produced from a SearchQuery.
type NormalizedQuery string

// SourceMercadoLivre labels every product scraped from Mercado Livre.
const SourceMercadoLivre = "Mercado Livre"

// Product is one listing resolved from a catalog results page. Title, Price
// and Link are always set; Image is nil when the listing has no usable image.
type Product struct {
	Title  string  `json:"title"  doc:"Listing title"                      example:"Fone de Ouvido Bluetooth JBL Tune 520BT"`
	Price  string  `json:"price"  doc:"Display price in BRL"                example:"R$ 249,90"`
	Link   string  `json:"link"   doc:"Listing URL as found on the page"`
	Image  *string `json:"image"  doc:"Thumbnail URL, null when unavailable" required:"false"`
	Source string  `json:"source" doc:"Store the listing came from"        example:"Mercado Livre"`
}

// NewProduct builds a Mercado Livre product. An empty image yields a nil Image.
func NewProduct(title, price, link, image string) Product {
	p := Product{
		Title:  title,
		Price:  price,
		Link:   link,
		Source: SourceMercadoLivre,
	}
	if image != "" {
		p.Image = &image
	}
	return p
}

// SearchResult is the envelope returned for one search request.
type SearchResult struct {
	Query           SearchQuery     `json:"query"            doc:"Query as submitted"`
	NormalizedQuery NormalizedQuery `json:"normalized_query" doc:"Search term sent to the catalog"`
	Products        []Product       `json:"products"         doc:"Listings in page order"`
	Total           int             `json:"total"            doc:"Number of products returned"`
	Skipped         int             `json:"skipped"          doc:"Listing containers that did not yield a product"`
}

// Role is the permission level of a stored user.
type Role string

// Role constants.
const (
	RoleUser       Role = "user"
	RoleSupervisor Role = "supervisor"
)

var validRoles = []Role{RoleUser, RoleSupervisor}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return slices.Contains(validRoles, r)
}

// ParseRole converts s into a Role, accepting any letter case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// User is a registered account. AuthID is the identifier issued by the
// external auth provider.
type User struct {
	ID        string    `json:"id"         db:"id"`
	AuthID    string    `json:"auth_id"    db:"auth_id"`
	Email     string    `json:"email"      db:"email"`
	Name      string    `json:"name"       db:"name"`
	Role      Role      `json:"role"       db:"role"`
	IsActive  bool      `json:"is_active"  db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserUpdate carries the mutable profile fields. Nil fields are left as is.
type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil
}
