package mongostore

import (
	"context"
	"fmt"

	"github.com/avvvet/signin-register/internal/registersvc/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const VisitorCollection = "visitors"

type visitorDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	models.Visitor `bson:",inline"`
}

func (d visitorDoc) model() models.Visitor {
	v := d.Visitor
	v.ID = d.ID.Hex()
	return v
}

type VisitorStore struct {
	coll *mongo.Collection
}

func NewVisitorStore(db *mongo.Database) *VisitorStore {
	return &VisitorStore{coll: db.Collection(VisitorCollection)}
}

func (s *VisitorStore) CreateVisitor(ctx context.Context, v models.Visitor) (*models.Visitor, error) {
	doc := visitorDoc{ID: primitive.NewObjectID(), Visitor: v}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert visitor: %w", err)
	}

	created := doc.model()
	return &created, nil
}

// ListVisitors returns every visitor in natural order.
func (s *VisitorStore) ListVisitors(ctx context.Context) ([]models.Visitor, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find visitors: %w", err)
	}

	var docs []visitorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode visitors: %w", err)
	}

	visitors := make([]models.Visitor, 0, len(docs))
	for _, d := range docs {
		visitors = append(visitors, d.model())
	}
	return visitors, nil
}
