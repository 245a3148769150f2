package domain

import (
	"errors"
	"time"
)

var ErrDesignNotFound = errors.New("design not found")
var ErrForbidden = errors.New("access forbidden")
var ErrUnauthenticated = errors.New("authentication required")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Element kinds supported on a design canvas.
const (
	ElementText  = "text"
	ElementImage = "image"
)

// Position places an element on the garment canvas.
type Position struct {
	X        float64 `json:"x" bson:"x"`
	Y        float64 `json:"y" bson:"y"`
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
	Rotation float64 `json:"rotation" bson:"rotation"`
}

// Element is a single text or image item placed on a design.
// Text elements use Content/FontFamily/FontSize/Color; image elements use URL.
type Element struct {
	Type       string   `json:"type" bson:"type"`
	Content    string   `json:"content,omitempty" bson:"content,omitempty"`
	FontFamily string   `json:"font_family,omitempty" bson:"font_family,omitempty"`
	FontSize   float64  `json:"font_size,omitempty" bson:"font_size,omitempty"`
	Color      string   `json:"color,omitempty" bson:"color,omitempty"`
	URL        string   `json:"url,omitempty" bson:"url,omitempty"`
	Position   Position `json:"position" bson:"position"`
}

// Design is the core persisted artifact: a customized garment configuration.
// OwnerID is fixed at creation and never transferred.
type Design struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Name             string    `json:"name"`
	BaseColor        string    `json:"base_color"`
	HasHood          bool      `json:"has_hood"`
	SleeveLeftColor  string    `json:"sleeve_left_color"`
	SleeveRightColor string    `json:"sleeve_right_color"`
	CollarColor      string    `json:"collar_color"`
	HasBorders       bool      `json:"has_borders"`
	BorderColor      string    `json:"border_color"`
	HasZipper        bool      `json:"has_zipper"`
	ZipperColor      string    `json:"zipper_color"`
	Elements         []Element `json:"elements"`
	IsPublic         bool      `json:"is_public"`
	Preview          string    `json:"preview,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether the actor owns the design. Ownership is compared
// by stable identity key, never by reference.
func (d *Design) IsOwnedBy(a Actor) bool {
	return a.Authenticated() && d.OwnerID == a.ID
}
