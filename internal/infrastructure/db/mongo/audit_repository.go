package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

const collectionAuditEvents = "auth_events"

// AuditRepository persists the authentication audit trail.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAuditEvents)}
}

func (r *AuditRepository) Insert(ctx context.Context, event domain.AuthEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"email":       event.Email,
		"action":      event.Action,
		"outcome":     event.Outcome,
		"timestamp":   event.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.Detail != "" {
		doc["detail"] = event.Detail
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

// ListRecent returns the newest events first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuthEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list auth events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.AuthEvent
	for cur.Next(ctx) {
		var doc struct {
			ID        primitive.ObjectID `bson:"_id"`
			Email     string             `bson:"email"`
			Action    string             `bson:"action"`
			Outcome   string             `bson:"outcome"`
			Detail    string             `bson:"detail,omitempty"`
			Timestamp time.Time          `bson:"timestamp"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode auth event: %w", err)
		}
		events = append(events, domain.AuthEvent{
			ID:        doc.ID.Hex(),
			Email:     doc.Email,
			Action:    doc.Action,
			Outcome:   doc.Outcome,
			Detail:    doc.Detail,
			Timestamp: doc.Timestamp,
		})
	}
	return events, cur.Err()
}

// EnsureIndexes creates the listing index.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	return err
}
