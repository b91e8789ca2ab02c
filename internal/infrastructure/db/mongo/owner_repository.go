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

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

const collectionOwners = "owners"

// OwnerRepository implements ports.OwnerRepository on MongoDB.
type OwnerRepository struct {
	col *mongo.Collection
}

func NewOwnerRepository(db *mongo.Database) *OwnerRepository {
	return &OwnerRepository{col: db.Collection(collectionOwners)}
}

type ownerDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone,omitempty"`
	Email     string             `bson:"email"`
	Address   string             `bson:"address,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *ownerDoc) toDomain() *domain.Owner {
	return &domain.Owner{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		Address:   d.Address,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *OwnerRepository) Insert(ctx context.Context, input ports.OwnerInput) (*domain.Owner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := ownerDoc{
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert owner: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *OwnerRepository) FindAll(ctx context.Context) ([]domain.Owner, error) {
	return r.find(ctx, bson.M{}, 0)
}

func (r *OwnerRepository) FindByID(ctx context.Context, id string) (*domain.Owner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOwnerNotFound
	}

	var doc ownerDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OwnerRepository) Update(ctx context.Context, id string, input ports.OwnerInput) (*domain.Owner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOwnerNotFound
	}

	set := bson.M{
		"name":       input.Name,
		"phone":      input.Phone,
		"email":      input.Email,
		"address":    input.Address,
		"updated_at": time.Now().UTC(),
	}

	var doc ownerDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("update owner: %w", err)
	}
	return doc.toDomain(), nil
}

// Search matches term case-insensitively against name, phone and email.
func (r *OwnerRepository) Search(ctx context.Context, term string, limit int) ([]domain.Owner, error) {
	pattern := primitive.Regex{Pattern: regexQuote(term), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"phone": pattern},
		{"email": pattern},
	}}
	return r.find(ctx, filter, int64(limit))
}

func (r *OwnerRepository) find(ctx context.Context, filter bson.M, limit int64) ([]domain.Owner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer cur.Close(ctx)

	var owners []domain.Owner
	for cur.Next(ctx) {
		var doc ownerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode owner: %w", err)
		}
		owners = append(owners, *doc.toDomain())
	}
	return owners, cur.Err()
}
