package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teedesigner/design-api/internal/core/domain"
	"github.com/teedesigner/design-api/internal/core/ports"
)

const designsCollection = "designs"

type DesignRepository struct {
	coll *mongo.Collection
}

func NewDesignRepository(db *mongo.Database) *DesignRepository {
	return &DesignRepository{coll: db.Collection(designsCollection)}
}

type mongoDesign struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Owner            primitive.ObjectID `bson:"owner"`
	Name             string             `bson:"name"`
	BaseColor        string             `bson:"base_color"`
	HasHood          bool               `bson:"has_hood"`
	SleeveLeftColor  string             `bson:"sleeve_left_color"`
	SleeveRightColor string             `bson:"sleeve_right_color"`
	CollarColor      string             `bson:"collar_color"`
	HasBorders       bool               `bson:"has_borders"`
	BorderColor      string             `bson:"border_color"`
	HasZipper        bool               `bson:"has_zipper"`
	ZipperColor      string             `bson:"zipper_color"`
	Elements         []domain.Element   `bson:"elements"`
	IsPublic         bool               `bson:"is_public"`
	Preview          string             `bson:"preview,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (md mongoDesign) toDomain() *domain.Design {
	elements := md.Elements
	if elements == nil {
		elements = []domain.Element{}
	}
	return &domain.Design{
		ID:               md.ID.Hex(),
		OwnerID:          md.Owner.Hex(),
		Name:             md.Name,
		BaseColor:        md.BaseColor,
		HasHood:          md.HasHood,
		SleeveLeftColor:  md.SleeveLeftColor,
		SleeveRightColor: md.SleeveRightColor,
		CollarColor:      md.CollarColor,
		HasBorders:       md.HasBorders,
		BorderColor:      md.BorderColor,
		HasZipper:        md.HasZipper,
		ZipperColor:      md.ZipperColor,
		Elements:         elements,
		IsPublic:         md.IsPublic,
		Preview:          md.Preview,
		CreatedAt:        md.CreatedAt,
		UpdatedAt:        md.UpdatedAt,
	}
}

func (r *DesignRepository) Create(ctx context.Context, d *domain.Design) (*domain.Design, error) {
	owner, err := primitive.ObjectIDFromHex(d.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id: %w", err)
	}

	doc := mongoDesign{
		Owner:            owner,
		Name:             d.Name,
		BaseColor:        d.BaseColor,
		HasHood:          d.HasHood,
		SleeveLeftColor:  d.SleeveLeftColor,
		SleeveRightColor: d.SleeveRightColor,
		CollarColor:      d.CollarColor,
		HasBorders:       d.HasBorders,
		BorderColor:      d.BorderColor,
		HasZipper:        d.HasZipper,
		ZipperColor:      d.ZipperColor,
		Elements:         d.Elements,
		IsPublic:         d.IsPublic,
		Preview:          d.Preview,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert design: %w", err)
	}

	created := *d
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DesignRepository) FindByID(ctx context.Context, id string) (*domain.Design, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDesignNotFound
	}

	var md mongoDesign
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&md); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDesignNotFound
		}
		return nil, fmt.Errorf("find design: %w", err)
	}
	return md.toDomain(), nil
}

func (r *DesignRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Design, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []*domain.Design{}, nil
	}
	return r.findMany(ctx, bson.M{"owner": oid})
}

func (r *DesignRepository) FindPublic(ctx context.Context) ([]*domain.Design, error) {
	return r.findMany(ctx, bson.M{"is_public": true})
}

// SearchByName runs a text search over design names, scoped to public
// designs only. Private designs never appear in results.
func (r *DesignRepository) SearchByName(ctx context.Context, query string) ([]*domain.Design, error) {
	filter := bson.M{
		"$text":     bson.M{"$search": query},
		"is_public": true,
	}
	return r.findMany(ctx, filter)
}

func (r *DesignRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Design, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find designs: %w", err)
	}
	defer cur.Close(ctx)

	designs := make([]*domain.Design, 0)
	for cur.Next(ctx) {
		var md mongoDesign
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode design: %w", err)
		}
		designs = append(designs, md.toDomain())
	}
	return designs, cur.Err()
}

// Update applies the patch as a single $set. Owner and creation timestamp
// are never part of the update document.
func (r *DesignRepository) Update(ctx context.Context, id string, patch ports.DesignPatch) (*domain.Design, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDesignNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.BaseColor != nil {
		set["base_color"] = *patch.BaseColor
	}
	if patch.HasHood != nil {
		set["has_hood"] = *patch.HasHood
	}
	if patch.SleeveLeftColor != nil {
		set["sleeve_left_color"] = *patch.SleeveLeftColor
	}
	if patch.SleeveRightColor != nil {
		set["sleeve_right_color"] = *patch.SleeveRightColor
	}
	if patch.CollarColor != nil {
		set["collar_color"] = *patch.CollarColor
	}
	if patch.HasBorders != nil {
		set["has_borders"] = *patch.HasBorders
	}
	if patch.BorderColor != nil {
		set["border_color"] = *patch.BorderColor
	}
	if patch.HasZipper != nil {
		set["has_zipper"] = *patch.HasZipper
	}
	if patch.ZipperColor != nil {
		set["zipper_color"] = *patch.ZipperColor
	}
	if patch.Elements != nil {
		set["elements"] = *patch.Elements
	}
	if patch.IsPublic != nil {
		set["is_public"] = *patch.IsPublic
	}
	if patch.Preview != nil {
		set["preview"] = *patch.Preview
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var md mongoDesign
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&md)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDesignNotFound
		}
		return nil, fmt.Errorf("update design: %w", err)
	}
	return md.toDomain(), nil
}

func (r *DesignRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDesignNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDesignNotFound
	}
	return nil
}

// EnsureIndexes creates the owner and name-text indexes on the designs
// collection.
func (r *DesignRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}}},
		{Keys: bson.D{{Key: "is_public", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: "text"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
