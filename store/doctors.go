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

const doctorCollection = "doctors"

type Doctors struct {
	collection *mongo.Collection
}

func NewDoctors(database *mongo.Database) *Doctors {
	return &Doctors{collection: database.Collection(doctorCollection)}
}

// EnsureIndexes creates the unique email and phone indexes. Uniqueness
// is enforced here, in the store, not in application code.
func (s *Doctors) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

func (s *Doctors) Create(ctx context.Context, doctor *models.Doctor) error {
	doctor.ID = primitive.NewObjectID()
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = doctor.CreatedAt

	_, err := db.InsertOne(ctx, s.collection, doctor)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *Doctors) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := db.FindOne(ctx, s.collection, bson.M{"_id": id}, &doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *Doctors) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := db.FindOne(ctx, s.collection, bson.M{"email": email}, &doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

/*
* Apply only the provided fields with $set
* Stamp updatedAt on every write
* Return the updated document
 */
func (s *Doctors) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Doctor, error) {
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

func (s *Doctors) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.DeleteOne(ctx, s.collection, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Doctors) List(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := db.FindAll(ctx, s.collection, bson.M{}, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}
