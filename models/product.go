package models

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Price struct {
	Original float64 `bson:"original" json:"original"`
	Current  float64 `bson:"current" json:"current"`
	Discount float64 `bson:"discount" json:"discount"`
}

type Stock struct {
	Quantity  int  `bson:"quantity" json:"quantity"`
	Available bool `bson:"available" json:"available"`
}

type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

type Seller struct {
	Name     string `bson:"name" json:"name"`
	Official bool   `bson:"official" json:"official"`
	Sales    int    `bson:"sales" json:"sales"`
}

type ShippingInfo struct {
	Free bool `bson:"free" json:"free"`
	Fast bool `bson:"fast" json:"fast"`
}

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Price          Price              `bson:"price" json:"price"`
	Images         []string           `bson:"images" json:"images"`
	Category       string             `bson:"category" json:"category"`
	Brand          string             `bson:"brand" json:"brand"`
	Specifications map[string]string  `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Features       []string           `bson:"features,omitempty" json:"features,omitempty"`
	Stock          Stock              `bson:"stock" json:"stock"`
	Rating         Rating             `bson:"rating" json:"rating"`
	Seller         Seller             `bson:"seller" json:"seller"`
	Shipping       ShippingInfo       `bson:"shipping" json:"shipping"`
	Slug           string             `bson:"slug" json:"slug"`
	Active         bool               `bson:"active" json:"active"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var (
	slugStrip    = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonWordChars = regexp.MustCompile(`[^\w\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	multiHyphen  = regexp.MustCompile(`--+`)
)

// MakeSlug derives the URL-safe identifier from a product title: lowercase,
// diacritics stripped, non-word characters removed, whitespace collapsed to
// hyphens. Same title always yields the same slug.
func MakeSlug(title string) string {
	s := strings.ToLower(title)
	if stripped, _, err := transform.String(slugStrip, s); err == nil {
		s = stripped
	}
	s = nonWordChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}
