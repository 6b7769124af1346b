package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/avvvet/signin-register/internal/registersvc/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ContractorCollection = "contractors"

type contractorDoc struct {
	ID                primitive.ObjectID `bson:"_id"`
	models.Contractor `bson:",inline"`
}

func (d contractorDoc) model() models.Contractor {
	c := d.Contractor
	c.ID = d.ID.Hex()
	return c
}

type ContractorStore struct {
	coll *mongo.Collection
}

func NewContractorStore(db *mongo.Database) *ContractorStore {
	return &ContractorStore{coll: db.Collection(ContractorCollection)}
}

func (s *ContractorStore) CreateContractor(ctx context.Context, c models.Contractor) (*models.Contractor, error) {
	doc := contractorDoc{ID: primitive.NewObjectID(), Contractor: c}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert contractor: %w", err)
	}

	created := doc.model()
	return &created, nil
}

func (s *ContractorStore) ListContractors(ctx context.Context) ([]models.Contractor, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find contractors: %w", err)
	}

	var docs []contractorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode contractors: %w", err)
	}

	contractors := make([]models.Contractor, 0, len(docs))
	for _, d := range docs {
		contractors = append(contractors, d.model())
	}
	return contractors, nil
}

// UpdateContractor applies fields with $set. An empty field list only
// reads the record back.
func (s *ContractorStore) UpdateContractor(ctx context.Context, id string, fields []models.Field) (*models.Contractor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	filter := bson.D{{Key: "_id", Value: oid}}

	var res *mongo.SingleResult
	if len(fields) == 0 {
		res = s.coll.FindOne(ctx, filter)
	} else {
		set := make(bson.D, 0, len(fields))
		for _, f := range fields {
			set = append(set, bson.E{Key: f.Name, Value: f.Value})
		}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		res = s.coll.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: set}}, opts)
	}

	var doc contractorDoc
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("update contractor %s: %w", id, err)
	}

	updated := doc.model()
	return &updated, nil
}
