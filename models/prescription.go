package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prescription carries doctorId and patientId copied from its
// consultation at creation time, so it stays queryable by either party
// on its own.
type Prescription struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ConsultationID   primitive.ObjectID `json:"consultationId" bson:"consultationId"`
	DoctorID         primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	PatientID        primitive.ObjectID `json:"patientId" bson:"patientId"`
	CareInstructions string             `json:"careInstructions" bson:"careInstructions"`
	Medicines        string             `json:"medicines,omitempty" bson:"medicines,omitempty"`
	PDFPath          string             `json:"pdfPath" bson:"pdfPath"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type PrescriptionView struct {
	Prescription `bson:",inline"`
	Patient      *PatientRef `json:"patient,omitempty" bson:"patient,omitempty"`
}
