package handler

import "github.com/teedesigner/design-api/internal/core/domain"

type positionRequest struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
}

type elementRequest struct {
	Type       string          `json:"type" validate:"required,oneof=text image"`
	Content    string          `json:"content"`
	FontFamily string          `json:"font_family"`
	FontSize   float64         `json:"font_size"`
	Color      string          `json:"color"`
	URL        string          `json:"url"`
	Position   positionRequest `json:"position"`
}

// createDesignRequest accepts the full attribute set; everything except the
// name is optional and falls back to the garment defaults.
type createDesignRequest struct {
	Name             string           `json:"name" validate:"required"`
	BaseColor        string           `json:"base_color"`
	HasHood          bool             `json:"has_hood"`
	SleeveLeftColor  string           `json:"sleeve_left_color"`
	SleeveRightColor string           `json:"sleeve_right_color"`
	CollarColor      string           `json:"collar_color"`
	HasBorders       bool             `json:"has_borders"`
	BorderColor      string           `json:"border_color"`
	HasZipper        bool             `json:"has_zipper"`
	ZipperColor      string           `json:"zipper_color"`
	Elements         []elementRequest `json:"elements"`
	IsPublic         bool             `json:"is_public"`
	Preview          string           `json:"preview"`
}

// updateDesignRequest is a partial update: only fields present in the JSON
// body are applied. Unrecognized fields are ignored by the bind, not
// rejected.
type updateDesignRequest struct {
	Name             *string           `json:"name"`
	BaseColor        *string           `json:"base_color"`
	HasHood          *bool             `json:"has_hood"`
	SleeveLeftColor  *string           `json:"sleeve_left_color"`
	SleeveRightColor *string           `json:"sleeve_right_color"`
	CollarColor      *string           `json:"collar_color"`
	HasBorders       *bool             `json:"has_borders"`
	BorderColor      *string           `json:"border_color"`
	HasZipper        *bool             `json:"has_zipper"`
	ZipperColor      *string           `json:"zipper_color"`
	Elements         *[]elementRequest `json:"elements"`
	IsPublic         *bool             `json:"is_public"`
	Preview          *string           `json:"preview"`
}

type designResponse struct {
	Design *domain.Design `json:"design"`
}

type designsResponse struct {
	Designs []*domain.Design `json:"designs"`
}
