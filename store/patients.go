package store

import (
	"context"
	"errors"
	"time"

	"MediLink360/db"
	"MediLink360/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const patientCollection = "patients"

type Patients struct {
	collection *mongo.Collection
}

func NewPatients(database *mongo.Database) *Patients {
	return &Patients{collection: database.Collection(patientCollection)}
}

func (s *Patients) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

func (s *Patients) Create(ctx context.Context, patient *models.Patient) error {
	patient.ID = primitive.NewObjectID()
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = patient.CreatedAt

	_, err := db.InsertOne(ctx, s.collection, patient)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *Patients) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	var patient models.Patient
	err := db.FindOne(ctx, s.collection, bson.M{"_id": id}, &patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *Patients) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	err := db.FindOne(ctx, s.collection, bson.M{"email": email}, &patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *Patients) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Patient, error) {
	fields["updatedAt"] = time.Now()

	res, err := db.UpdateOne(ctx, s.collection, bson.M{"_id": id}, bson.M{"$set": fields})
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *Patients) List(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := db.FindAll(ctx, s.collection, bson.M{}, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (s *Patients) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.DeleteOne(ctx, s.collection, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
