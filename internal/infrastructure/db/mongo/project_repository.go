package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const projectCollection = "projects"

type MongoProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{coll: db.Collection(projectCollection)}
}

type mongoProject struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID   string             `bson:"company_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Budget      float64            `bson:"budget"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *MongoProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	doc := mongoProject{
		CompanyID:   project.CompanyID,
		Title:       project.Title,
		Description: project.Description,
		Budget:      project.Budget,
		CreatedAt:   project.CreatedAt.Unix(),
		UpdatedAt:   project.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created := *project
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	return &domain.Project{
		ID:          mp.ID.Hex(),
		CompanyID:   mp.CompanyID,
		Title:       mp.Title,
		Description: mp.Description,
		Budget:      mp.Budget,
		CreatedAt:   unixToTime(mp.CreatedAt),
		UpdatedAt:   unixToTime(mp.UpdatedAt),
	}, nil
}
