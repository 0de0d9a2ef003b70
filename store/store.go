// Package store owns persistence for the four record kinds. Interfaces
// are defined here so services can be exercised against fakes; the
// implementations in this package are MongoDB-backed and rely on the
// store's atomic single-document operations rather than any
// application-level locking.
package store

import (
	"context"
	"errors"

	"MediLink360/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate unique field")
)

type DoctorStore interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Doctor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]models.Doctor, error)
}

type PatientStore interface {
	Create(ctx context.Context, patient *models.Patient) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Patient, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]models.Patient, error)
}

type ConsultationStore interface {
	Create(ctx context.Context, consultation *models.Consultation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Consultation, error)
	FindByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Consultation, error)
	FindByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Consultation, error)
	FindAll(ctx context.Context) ([]models.Consultation, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Consultation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PrescriptionStore interface {
	Create(ctx context.Context, prescription *models.Prescription) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Prescription, error)
	FindByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Prescription, error)
	FindByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Prescription, error)
	FindByDoctorAndPatient(ctx context.Context, doctorID, patientID primitive.ObjectID) ([]models.Prescription, error)
	FindAll(ctx context.Context) ([]models.Prescription, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Prescription, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
