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

const collectionPets = "pets"

// PetRepository implements ports.PetRepository on MongoDB. Listings carry
// the owner columns; the join is resolved with a second batched query
// rather than an aggregation pipeline.
type PetRepository struct {
	col    *mongo.Collection
	owners *mongo.Collection
}

func NewPetRepository(db *mongo.Database) *PetRepository {
	return &PetRepository{
		col:    db.Collection(collectionPets),
		owners: db.Collection(collectionOwners),
	}
}

type petDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID       string             `bson:"owner_id"`
	Name          string             `bson:"name"`
	Species       string             `bson:"species"`
	Breed         string             `bson:"breed,omitempty"`
	BirthDate     string             `bson:"birth_date,omitempty"`
	InitialWeight float64            `bson:"initial_weight,omitempty"`
	PhotoURL      string             `bson:"photo_url,omitempty"`
	Active        bool               `bson:"active"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d *petDoc) toDomain() domain.Pet {
	return domain.Pet{
		ID:            d.ID.Hex(),
		OwnerID:       d.OwnerID,
		Name:          d.Name,
		Species:       d.Species,
		Breed:         d.Breed,
		BirthDate:     d.BirthDate,
		InitialWeight: d.InitialWeight,
		PhotoURL:      d.PhotoURL,
		Active:        d.Active,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *PetRepository) Insert(ctx context.Context, input ports.CreatePetInput) (*domain.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := petDoc{
		OwnerID:       input.OwnerID,
		Name:          input.Name,
		Species:       input.Species,
		Breed:         input.Breed,
		BirthDate:     input.BirthDate,
		InitialWeight: input.InitialWeight,
		PhotoURL:      input.PhotoURL,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert pet: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	pet := doc.toDomain()
	return &pet, nil
}

// FindByID returns the pet with its owner joined in, active or not. A pet
// whose owner row has gone missing still resolves, with empty owner
// columns.
func (r *PetRepository) FindByID(ctx context.Context, id string) (*domain.PetWithOwner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPetNotFound
	}

	var doc petDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}

	joined, err := r.attachOwners(ctx, []petDoc{doc})
	if err != nil {
		return nil, err
	}
	return &joined[0], nil
}

// Update applies partial-update semantics: only non-nil fields enter the
// $set document.
func (r *PetRepository) Update(ctx context.Context, id string, input ports.UpdatePetInput) (*domain.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPetNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if input.OwnerID != nil {
		set["owner_id"] = *input.OwnerID
	}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Species != nil {
		set["species"] = *input.Species
	}
	if input.Breed != nil {
		set["breed"] = *input.Breed
	}
	if input.BirthDate != nil {
		set["birth_date"] = *input.BirthDate
	}
	if input.InitialWeight != nil {
		set["initial_weight"] = *input.InitialWeight
	}
	if input.PhotoURL != nil {
		set["photo_url"] = *input.PhotoURL
	}
	if input.Active != nil {
		set["active"] = *input.Active
	}

	var doc petDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("update pet: %w", err)
	}
	pet := doc.toDomain()
	return &pet, nil
}

// SearchActive lists active pets sorted by name. A non-empty term matches
// the pet name or the owner name, case-insensitively.
func (r *PetRepository) SearchActive(ctx context.Context, term string) ([]domain.PetWithOwner, error) {
	filter := bson.M{"active": true}
	if term != "" {
		pattern := primitive.Regex{Pattern: regexQuote(term), Options: "i"}

		ownerIDs, err := r.ownerIDsMatching(ctx, pattern)
		if err != nil {
			return nil, err
		}
		filter["$or"] = []bson.M{
			{"name": pattern},
			{"owner_id": bson.M{"$in": ownerIDs}},
		}
	}
	return r.findJoined(ctx, filter)
}

func (r *PetRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]domain.PetWithOwner, error) {
	return r.findJoined(ctx, bson.M{"owner_id": ownerID, "active": true})
}

func (r *PetRepository) FindInactive(ctx context.Context) ([]domain.PetWithOwner, error) {
	return r.findJoined(ctx, bson.M{"active": false})
}

func (r *PetRepository) FindAllIncludingInactive(ctx context.Context) ([]domain.PetWithOwner, error) {
	return r.findJoined(ctx, bson.M{})
}

// SetActive toggles the logical-delete flag.
func (r *PetRepository) SetActive(ctx context.Context, id string, active bool) (*domain.Pet, error) {
	return r.Update(ctx, id, ports.UpdatePetInput{Active: &active})
}

// EnsureIndexes creates the indexes the listings and searches rely on.
func (r *PetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "name", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *PetRepository) findJoined(ctx context.Context, filter bson.M) ([]domain.PetWithOwner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer cur.Close(ctx)

	var docs []petDoc
	for cur.Next(ctx) {
		var doc petDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode pet: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return r.attachOwners(ctx, docs)
}

// attachOwners resolves the owner columns for a batch of pets with one
// $in query instead of an aggregation pipeline.
func (r *PetRepository) attachOwners(ctx context.Context, docs []petDoc) ([]domain.PetWithOwner, error) {
	ids := make([]primitive.ObjectID, 0, len(docs))
	seen := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		if _, ok := seen[d.OwnerID]; ok {
			continue
		}
		seen[d.OwnerID] = struct{}{}
		if oid, err := primitive.ObjectIDFromHex(d.OwnerID); err == nil {
			ids = append(ids, oid)
		}
	}

	owners := make(map[string]ownerDoc, len(ids))
	if len(ids) > 0 {
		cur, err := r.owners.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, fmt.Errorf("join owners: %w", err)
		}
		defer cur.Close(ctx)

		for cur.Next(ctx) {
			var doc ownerDoc
			if err := cur.Decode(&doc); err != nil {
				return nil, fmt.Errorf("decode owner: %w", err)
			}
			owners[doc.ID.Hex()] = doc
		}
		if err := cur.Err(); err != nil {
			return nil, err
		}
	}

	joined := make([]domain.PetWithOwner, 0, len(docs))
	for _, d := range docs {
		p := domain.PetWithOwner{Pet: d.toDomain()}
		if o, ok := owners[d.OwnerID]; ok {
			p.OwnerName = o.Name
			p.OwnerPhone = o.Phone
			p.OwnerEmail = o.Email
		}
		joined = append(joined, p)
	}
	return joined, nil
}

// ownerIDsMatching returns the hex ids of owners whose name matches the
// pattern, for use in the pet-or-owner name search.
func (r *PetRepository) ownerIDsMatching(ctx context.Context, pattern primitive.Regex) ([]string, error) {
	cur, err := r.owners.Find(ctx, bson.M{"name": pattern}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("search owners: %w", err)
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode owner id: %w", err)
		}
		ids = append(ids, doc.ID.Hex())
	}
	return ids, cur.Err()
}
