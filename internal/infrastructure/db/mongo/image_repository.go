package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

const collectionImages = "images"

var imageIndexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
}

type ImageRepository struct {
	col *mongo.Collection
}

func NewImageRepository(db *mongo.Database) *ImageRepository {
	return &ImageRepository{col: db.Collection(collectionImages)}
}

type mongoImage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	URL         string             `bson:"url"`
	User        primitive.ObjectID `bson:"user"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (m mongoImage) toDomain() *domain.Image {
	img := &domain.Image{
		Name:        m.Name,
		Description: m.Description,
		URL:         m.URL,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
	// fields left out by a projection stay empty
	if !m.ID.IsZero() {
		img.ID = m.ID.Hex()
	}
	if !m.User.IsZero() {
		img.UserID = m.User.Hex()
	}
	return img
}

func (r *ImageRepository) FindByKey(ctx context.Context, key domain.Key) (*domain.Image, error) {
	if key.Field != "name" {
		return nil, fmt.Errorf("images cannot be looked up by %q", key.Field)
	}
	return r.findOne(ctx, bson.M{"name": key.Value})
}

func (r *ImageRepository) FindByID(ctx context.Context, id string) (*domain.Image, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ImageRepository) findOne(ctx context.Context, filter bson.M) (*domain.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoImage
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(domain.ResourceImage, "find", err)
	}
	return doc.toDomain(), nil
}

func (r *ImageRepository) Insert(ctx context.Context, img *domain.Image) (string, error) {
	owner, err := primitive.ObjectIDFromHex(img.UserID)
	if err != nil {
		return "", domain.Invalid("user", "user must be a valid id")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	res, err := r.col.InsertOne(ctx, mongoImage{
		Name:        img.Name,
		Description: img.Description,
		URL:         img.URL,
		User:        owner,
		CreatedAt:   orNow(img.CreatedAt, now),
		UpdatedAt:   orNow(img.UpdatedAt, now),
	})
	if err != nil {
		return "", translate(domain.ResourceImage, "insert", err)
	}
	return insertedID(res)
}

func (r *ImageRepository) Update(ctx context.Context, id string, p domain.ImagePatch) (*domain.Image, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	setIf(set, "name", p.Name)
	setIf(set, "description", p.Description)
	setIf(set, "url", p.URL)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoImage
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, returnAfter()).Decode(&doc)
	if err != nil {
		return nil, translate(domain.ResourceImage, "update", err)
	}
	return doc.toDomain(), nil
}

func (r *ImageRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, domain.ResourceImage, id)
}

func (r *ImageRepository) Count(ctx context.Context, filter ports.ImageFilter) (int64, error) {
	q, err := imageQuery(filter)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("count images: %w", err)
	}
	return n, nil
}

func (r *ImageRepository) Find(ctx context.Context, filter ports.ImageFilter, page domain.PageInfo) ([]*domain.Image, error) {
	q, err := imageQuery(filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(imageSort(filter)).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	if p := imageProjection(filter.Select); p != nil {
		opts.SetProjection(p)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("find images: %w", err)
	}

	var docs []mongoImage
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode images: %w", err)
	}

	images := make([]*domain.Image, 0, len(docs))
	for _, d := range docs {
		images = append(images, d.toDomain())
	}
	return images, nil
}
