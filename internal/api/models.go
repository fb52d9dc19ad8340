package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

const (
	PlaceholderImage = "/static/img/placeholder.svg"
	UnknownProduct   = "Unknown Product"
)

// Amount is a money or rating value. The backend sends decimals either as
// JSON numbers or as numeric strings; anything unparsable decodes to 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		data = []byte(strings.TrimSpace(s))
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		f = 0
	}
	*a = Amount(f)
	return nil
}

func (a Amount) Float() float64 { return float64(a) }

func (a Amount) String() string { return strconv.FormatFloat(float64(a), 'f', 2, 64) }

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Image struct {
	ID         int    `json:"id"`
	URL        string `json:"image_url"`
	AltText    string `json:"alt_text"`
	IsFeatured bool   `json:"is_featured"`
}

type Product struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       Amount    `json:"price"`
	Brand       string    `json:"brand"`
	Category    *Category `json:"category"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"is_active"`
	Rating      *Amount   `json:"rating"`
	Images      []Image   `json:"images"`
	CreatedAt   string    `json:"created_at"`
}

// ImageURL prefers the featured image, then the first, then a placeholder.
func (p Product) ImageURL() string {
	for _, img := range p.Images {
		if img.IsFeatured && img.URL != "" {
			return img.URL
		}
	}
	if len(p.Images) > 0 && p.Images[0].URL != "" {
		return p.Images[0].URL
	}
	return PlaceholderImage
}

func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// RatingValue reports the rating and whether the backend sent one.
func (p Product) RatingValue() (float64, bool) {
	if p.Rating == nil {
		return 0, false
	}
	return p.Rating.Float(), true
}

type Cart struct {
	ID    int        `json:"cart_id"`
	Items []CartItem `json:"items"`
}

type CartItem struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	Title     string  `json:"title"`
	Price     Amount  `json:"price"`
	Image     *string `json:"image"`
	Quantity  int     `json:"quantity"`
}

func (i CartItem) DisplayTitle() string {
	if strings.TrimSpace(i.Title) == "" {
		return UnknownProduct
	}
	return i.Title
}

func (i CartItem) ImageURL() string {
	if i.Image == nil || *i.Image == "" {
		return PlaceholderImage
	}
	return *i.Image
}

// LineTotal is price times quantity; negative inputs count as zero.
func (i CartItem) LineTotal() float64 {
	price := i.Price.Float()
	if price < 0 || i.Quantity < 0 {
		return 0
	}
	return price * float64(i.Quantity)
}

type CartLine struct {
	ID        int `json:"id"`
	ProductID int `json:"product"`
	Quantity  int `json:"quantity"`
}

type WishlistItem struct {
	ID      int     `json:"id"`
	Product Product `json:"product"`
	AddedAt string  `json:"added_at"`
}

type Review struct {
	ID        int    `json:"id"`
	User      string `json:"user"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// Author falls back to "Anonymous" for reviews without a user.
func (r Review) Author() string {
	if r.User == "" {
		return "Anonymous"
	}
	return r.User
}

type NewReview struct {
	ProductID int    `json:"product_id"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

type Order struct {
	ID          int         `json:"id"`
	TotalAmount Amount      `json:"total_amount"`
	Status      string      `json:"status"`
	AddressID   int         `json:"address"`
	Items       []OrderItem `json:"items"`
	CreatedAt   string      `json:"created_at"`
}

type OrderItem struct {
	ProductID int    `json:"product"`
	Quantity  int    `json:"quantity"`
	UnitPrice Amount `json:"unit_price"`
}

type OrderCreated struct {
	OrderID     int    `json:"order_id"`
	TotalAmount Amount `json:"total_amount"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
}

type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SellerRegistration struct {
	Username  string
	Password  string
	SecretKey string
}

type RegisterResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}
