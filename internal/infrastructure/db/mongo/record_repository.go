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

const collectionRecords = "medical_records"

// RecordRepository implements ports.RecordRepository on MongoDB. Reads
// join in the recording veterinarian's email from the accounts collection.
type RecordRepository struct {
	col      *mongo.Collection
	accounts *mongo.Collection
}

func NewRecordRepository(db *mongo.Database) *RecordRepository {
	return &RecordRepository{
		col:      db.Collection(collectionRecords),
		accounts: db.Collection(collectionAccounts),
	}
}

type recordDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	PetID          string             `bson:"pet_id"`
	VeterinarianID string             `bson:"veterinarian_id"`
	Date           time.Time          `bson:"date"`
	Reason         string             `bson:"reason,omitempty"`
	Diagnosis      string             `bson:"diagnosis"`
	Treatment      string             `bson:"treatment,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (d *recordDoc) toDomain() domain.MedicalRecord {
	return domain.MedicalRecord{
		ID:             d.ID.Hex(),
		PetID:          d.PetID,
		VeterinarianID: d.VeterinarianID,
		Date:           d.Date,
		Reason:         d.Reason,
		Diagnosis:      d.Diagnosis,
		Treatment:      d.Treatment,
		CreatedAt:      d.CreatedAt,
	}
}

func (r *RecordRepository) Insert(ctx context.Context, input ports.CreateRecordInput) (*domain.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := recordDoc{
		PetID:          input.PetID,
		VeterinarianID: input.VeterinarianID,
		Date:           input.Date.UTC(),
		Reason:         input.Reason,
		Diagnosis:      input.Diagnosis,
		Treatment:      input.Treatment,
		CreatedAt:      time.Now().UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	record := doc.toDomain()
	return &record, nil
}

// FindByPetID lists a pet's history newest first.
func (r *RecordRepository) FindByPetID(ctx context.Context, petID string) ([]domain.MedicalRecordWithVet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"pet_id": petID}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer cur.Close(ctx)

	var docs []recordDoc
	for cur.Next(ctx) {
		var doc recordDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return r.attachVets(ctx, docs)
}

func (r *RecordRepository) FindByID(ctx context.Context, id string) (*domain.MedicalRecordWithVet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	var doc recordDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find record: %w", err)
	}

	joined, err := r.attachVets(ctx, []recordDoc{doc})
	if err != nil {
		return nil, err
	}
	return &joined[0], nil
}

// EnsureIndexes creates the pet history index.
func (r *RecordRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "pet_id", Value: 1}, {Key: "date", Value: -1}},
	})
	return err
}

// attachVets resolves veterinarian emails for a batch of records. A record
// whose account has gone missing keeps an empty email.
func (r *RecordRepository) attachVets(ctx context.Context, docs []recordDoc) ([]domain.MedicalRecordWithVet, error) {
	ids := make([]primitive.ObjectID, 0, len(docs))
	seen := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		if _, ok := seen[d.VeterinarianID]; ok {
			continue
		}
		seen[d.VeterinarianID] = struct{}{}
		if oid, err := primitive.ObjectIDFromHex(d.VeterinarianID); err == nil {
			ids = append(ids, oid)
		}
	}

	emails := make(map[string]string, len(ids))
	if len(ids) > 0 {
		cur, err := r.accounts.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
			options.Find().SetProjection(bson.M{"email": 1}))
		if err != nil {
			return nil, fmt.Errorf("join veterinarians: %w", err)
		}
		defer cur.Close(ctx)

		for cur.Next(ctx) {
			var doc struct {
				ID    primitive.ObjectID `bson:"_id"`
				Email string             `bson:"email"`
			}
			if err := cur.Decode(&doc); err != nil {
				return nil, fmt.Errorf("decode veterinarian: %w", err)
			}
			emails[doc.ID.Hex()] = doc.Email
		}
		if err := cur.Err(); err != nil {
			return nil, err
		}
	}

	joined := make([]domain.MedicalRecordWithVet, 0, len(docs))
	for _, d := range docs {
		joined = append(joined, domain.MedicalRecordWithVet{
			MedicalRecord:     d.toDomain(),
			VeterinarianEmail: emails[d.VeterinarianID],
		})
	}
	return joined, nil
}
