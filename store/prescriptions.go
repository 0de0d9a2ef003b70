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

const prescriptionCollection = "prescriptions"

type Prescriptions struct {
	collection *mongo.Collection
}

func NewPrescriptions(database *mongo.Database) *Prescriptions {
	return &Prescriptions{collection: database.Collection(prescriptionCollection)}
}

func (s *Prescriptions) Create(ctx context.Context, prescription *models.Prescription) error {
	prescription.ID = primitive.NewObjectID()
	prescription.CreatedAt = time.Now()

	_, err := db.InsertOne(ctx, s.collection, prescription)
	return err
}

func (s *Prescriptions) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Prescription, error) {
	var prescription models.Prescription
	err := db.FindOne(ctx, s.collection, bson.M{"_id": id}, &prescription)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (s *Prescriptions) FindByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Prescription, error) {
	return s.find(ctx, bson.M{"doctorId": doctorID})
}

func (s *Prescriptions) FindByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Prescription, error) {
	return s.find(ctx, bson.M{"patientId": patientID})
}

func (s *Prescriptions) FindByDoctorAndPatient(ctx context.Context, doctorID, patientID primitive.ObjectID) ([]models.Prescription, error) {
	return s.find(ctx, bson.M{"doctorId": doctorID, "patientId": patientID})
}

func (s *Prescriptions) FindAll(ctx context.Context) ([]models.Prescription, error) {
	return s.find(ctx, bson.M{})
}

func (s *Prescriptions) find(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	if err := db.FindAll(ctx, s.collection, filter, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (s *Prescriptions) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Prescription, error) {
	fields["updatedAt"] = time.Now()

	res, err := db.UpdateOne(ctx, s.collection, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *Prescriptions) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.DeleteOne(ctx, s.collection, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
