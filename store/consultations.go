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
)

const consultationCollection = "consultations"

type Consultations struct {
	collection *mongo.Collection
}

func NewConsultations(database *mongo.Database) *Consultations {
	return &Consultations{collection: database.Collection(consultationCollection)}
}

func (s *Consultations) Create(ctx context.Context, consultation *models.Consultation) error {
	consultation.ID = primitive.NewObjectID()
	consultation.CreatedAt = time.Now()

	_, err := db.InsertOne(ctx, s.collection, consultation)
	return err
}

func (s *Consultations) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Consultation, error) {
	var consultation models.Consultation
	err := db.FindOne(ctx, s.collection, bson.M{"_id": id}, &consultation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (s *Consultations) FindByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Consultation, error) {
	return s.find(ctx, bson.M{"doctorId": doctorID})
}

func (s *Consultations) FindByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Consultation, error) {
	return s.find(ctx, bson.M{"patientId": patientID})
}

func (s *Consultations) FindAll(ctx context.Context) ([]models.Consultation, error) {
	return s.find(ctx, bson.M{})
}

func (s *Consultations) find(ctx context.Context, filter bson.M) ([]models.Consultation, error) {
	var consultations []models.Consultation
	if err := db.FindAll(ctx, s.collection, filter, &consultations); err != nil {
		return nil, err
	}
	return consultations, nil
}

func (s *Consultations) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Consultation, error) {
	res, err := db.UpdateOne(ctx, s.collection, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *Consultations) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.DeleteOne(ctx, s.collection, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
