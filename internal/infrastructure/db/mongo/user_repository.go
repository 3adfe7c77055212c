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
)

const collectionUsers = "users"

var userIndexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
}

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type mongoUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Firstname string             `bson:"firstname"`
	Lastname  string             `bson:"lastname"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (m mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID.Hex(),
		Firstname:    m.Firstname,
		Lastname:     m.Lastname,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
		Role:         m.Role,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func (r *UserRepository) FindByKey(ctx context.Context, key domain.Key) (*domain.User, error) {
	if key.Field != "username" && key.Field != "email" {
		return nil, fmt.Errorf("users cannot be looked up by %q", key.Field)
	}
	return r.findOne(ctx, bson.M{key.Field: key.Value})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoUser
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(domain.ResourceUser, "find", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Insert(ctx context.Context, u *domain.User) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoUser{
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: orNow(u.CreatedAt, now),
		UpdatedAt: orNow(u.UpdatedAt, now),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", translate(domain.ResourceUser, "insert", err)
	}
	return insertedID(res)
}

func (r *UserRepository) Update(ctx context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	setIf(set, "firstname", p.Firstname)
	setIf(set, "lastname", p.Lastname)
	setIf(set, "username", p.Username)
	setIf(set, "email", p.Email)
	setIf(set, "password", p.PasswordHash)
	setIf(set, "role", p.Role)
	setIf(set, "status", p.Status)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoUser
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, returnAfter()).Decode(&doc)
	if err != nil {
		return nil, translate(domain.ResourceUser, "update", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, domain.ResourceUser, id)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepository) List(ctx context.Context, page domain.PageInfo) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "username", Value: 1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}
