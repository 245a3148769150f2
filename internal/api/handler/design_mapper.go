package handler

import (
	"github.com/teedesigner/design-api/internal/core/domain"
	"github.com/teedesigner/design-api/internal/core/ports"
)

func toElement(r elementRequest) domain.Element {
	return domain.Element{
		Type:       r.Type,
		Content:    r.Content,
		FontFamily: r.FontFamily,
		FontSize:   r.FontSize,
		Color:      r.Color,
		URL:        r.URL,
		Position: domain.Position{
			X:        r.Position.X,
			Y:        r.Position.Y,
			Width:    r.Position.Width,
			Height:   r.Position.Height,
			Rotation: r.Position.Rotation,
		},
	}
}

func toElements(reqs []elementRequest) []domain.Element {
	if reqs == nil {
		return nil
	}
	elements := make([]domain.Element, 0, len(reqs))
	for _, r := range reqs {
		elements = append(elements, toElement(r))
	}
	return elements
}

// toCreateInput maps the HTTP request to the service DTO. The owner comes
// from the authenticated actor, never from the body.
func toCreateInput(req createDesignRequest, ownerID string) ports.CreateDesignInput {
	return ports.CreateDesignInput{
		OwnerID:          ownerID,
		Name:             req.Name,
		BaseColor:        req.BaseColor,
		HasHood:          req.HasHood,
		SleeveLeftColor:  req.SleeveLeftColor,
		SleeveRightColor: req.SleeveRightColor,
		CollarColor:      req.CollarColor,
		HasBorders:       req.HasBorders,
		BorderColor:      req.BorderColor,
		HasZipper:        req.HasZipper,
		ZipperColor:      req.ZipperColor,
		Elements:         toElements(req.Elements),
		IsPublic:         req.IsPublic,
		Preview:          req.Preview,
	}
}

// toDesignPatch carries over only the fields present in the request body.
func toDesignPatch(req updateDesignRequest) ports.DesignPatch {
	patch := ports.DesignPatch{
		Name:             req.Name,
		BaseColor:        req.BaseColor,
		HasHood:          req.HasHood,
		SleeveLeftColor:  req.SleeveLeftColor,
		SleeveRightColor: req.SleeveRightColor,
		CollarColor:      req.CollarColor,
		HasBorders:       req.HasBorders,
		BorderColor:      req.BorderColor,
		HasZipper:        req.HasZipper,
		ZipperColor:      req.ZipperColor,
		IsPublic:         req.IsPublic,
		Preview:          req.Preview,
	}
	if req.Elements != nil {
		elements := toElements(*req.Elements)
		patch.Elements = &elements
	}
	return patch
}
