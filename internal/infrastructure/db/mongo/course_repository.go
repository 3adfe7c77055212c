package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/umd-esiea/umd-api/internal/core/domain"
)

const collectionCourses = "courses"

var courseIndexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
}

type CourseRepository struct {
	col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{col: db.Collection(collectionCourses)}
}

type mongoCourse struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Content     []string           `bson:"content"`
	Tools       []string           `bson:"tools"`
}

func (m mongoCourse) toDomain() *domain.Course {
	c := &domain.Course{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		Content:     m.Content,
		Tools:       m.Tools,
	}
	if c.Content == nil {
		c.Content = []string{}
	}
	if c.Tools == nil {
		c.Tools = []string{}
	}
	return c
}

func (r *CourseRepository) FindByKey(ctx context.Context, key domain.Key) (*domain.Course, error) {
	if key.Field != "name" {
		return nil, fmt.Errorf("courses cannot be looked up by %q", key.Field)
	}
	return r.findOne(ctx, bson.M{"name": key.Value})
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CourseRepository) findOne(ctx context.Context, filter bson.M) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoCourse
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(domain.ResourceCourse, "find", err)
	}
	return doc.toDomain(), nil
}

func (r *CourseRepository) Insert(ctx context.Context, c *domain.Course) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, mongoCourse{
		Name:        c.Name,
		Description: c.Description,
		Content:     c.Content,
		Tools:       c.Tools,
	})
	if err != nil {
		return "", translate(domain.ResourceCourse, "insert", err)
	}
	return insertedID(res)
}

func (r *CourseRepository) Update(ctx context.Context, id string, p domain.CoursePatch) (*domain.Course, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	setIf(set, "name", p.Name)
	setIf(set, "description", p.Description)
	setIf(set, "content", p.Content)
	setIf(set, "tools", p.Tools)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoCourse
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, returnAfter()).Decode(&doc)
	if err != nil {
		return nil, translate(domain.ResourceCourse, "update", err)
	}
	return doc.toDomain(), nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, domain.ResourceCourse, id)
}

// List returns every course ordered by name.
func (r *CourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	var docs []mongoCourse
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}

	courses := make([]*domain.Course, 0, len(docs))
	for _, d := range docs {
		courses = append(courses, d.toDomain())
	}
	return courses, nil
}
