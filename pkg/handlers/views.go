package handlers

import (
	"html/template"
	"net/url"

	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/forms"
	"brand-showcase/pkg/imageurl"
	"brand-showcase/pkg/models"
)

// BrandCard is a brand as shown in listings
type BrandCard struct {
	Name        string
	Slug        string
	URL         string
	Description string
	MainImage   string
	Logo        string
	Tags        []string
	Type        string
	Favorite    bool
	FavoriteURL string
}

func newBrandCard(b models.Brand, favs map[string]bool) BrandCard {
	slug := catalog.Slug(b.Name)
	return BrandCard{
		Name:        b.Name,
		Slug:        slug,
		URL:         "/marques/" + url.PathEscape(slug),
		Description: b.Description,
		MainImage:   imageurl.Encode(b.MainImage),
		Logo:        imageurl.Encode(b.Logo),
		Tags:        b.Tags,
		Type:        b.Type,
		Favorite:    favs[b.Name],
		FavoriteURL: "/marques/" + url.PathEscape(slug) + "/favori",
	}
}

func newBrandCards(brands []models.Brand, favs map[string]bool) []BrandCard {
	cards := make([]BrandCard, 0, len(brands))
	for _, b := range brands {
		cards = append(cards, newBrandCard(b, favs))
	}
	return cards
}

// FilterLink is one choice of a filter bar
type FilterLink struct {
	Label  string
	URL    string
	Active bool
}

// HomePage is the data of the landing page
type HomePage struct {
	Title    string
	Featured []BrandCard
	ShowAll  bool
	AllURL   string
	Stats    models.Stats
}

// BrandsPage is the data of the brand listing
type BrandsPage struct {
	Title         string
	Search        string
	FavoritesOnly bool
	Tags          []FilterLink
	Types         []FilterLink
	Brands        []BrandCard
	Total         int
	HasMore       bool
	LoadMoreURL   string
	ResetURL      string
	FavoritesURL  string
	Filtered      bool
	Stats         models.Stats
}

// GalleryImage is one thumbnail of a gallery grid
type GalleryImage struct {
	URL    string
	Name   string
	Index  int
	Link   string
	Number int
}

// BrandPage is the data of a brand detail page
type BrandPage struct {
	Title       string
	Brand       models.Brand
	Card        BrandCard
	Description string
	History     template.HTML
	Website     string
	Products    []models.Product
	Contact     *models.Contact
	Preview     []GalleryImage
	ImageCount  int
	GalleryURL  string
	Similar     []BrandCard
}

// GalleryPage is the data of the paged gallery and its fullscreen viewer
type GalleryPage struct {
	Title        string
	BrandName    string
	BrandURL     string
	Empty        bool
	Fullscreen   bool
	Page         int
	Pages        int
	Images       []GalleryImage
	PrevPageURL  string
	NextPageURL  string
	Current      string
	CurrentName  string
	DownloadName string
	Position     int
	Total        int
	PrevURL      string
	NextURL      string
	CloseURL     string
}

// QuotePage is the data of the Arpin page and its quote form
type QuotePage struct {
	Title      string
	Brand      models.Brand
	History    template.HTML
	Products   []forms.Product
	Gallery    []GalleryImage
	Form       forms.QuoteForm
	Error      string
	Success    bool
	ReceiptID  string
	FormAction string
}

// ContactPage is the data of the contact page
type ContactPage struct {
	Title     string
	Form      forms.ContactForm
	Error     string
	Success   bool
	ReceiptID string
}

// ErrorPage is the data of the not-found page
type ErrorPage struct {
	Title   string
	Message string
}
