package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiabeticStatus is the family-history diabetic flag. Only the two
// listed values are accepted at the boundary.
type DiabeticStatus string

const (
	Diabetic    DiabeticStatus = "Diabetic"
	NonDiabetic DiabeticStatus = "Non-Diabetic"
)

func (s DiabeticStatus) Validate() error {
	switch s {
	case Diabetic, NonDiabetic:
		return nil
	}
	return fmt.Errorf("invalid diabeticStatus: %q", string(s))
}

// PaymentStatus tracks the payment sub-record. Pending is the only
// non-terminal state.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return nil
	}
	return fmt.Errorf("invalid payment status: %q", string(s))
}

// CanTransitionTo reports whether the payment state machine allows
// moving from s to next. Completed and Failed are terminal.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return s == PaymentPending && (next == PaymentCompleted || next == PaymentFailed)
}

type FamilyHistory struct {
	DiabeticStatus DiabeticStatus `json:"diabeticStatus" bson:"diabeticStatus"`
	Allergies      string         `json:"allergies,omitempty" bson:"allergies,omitempty"`
	Others         string         `json:"others,omitempty" bson:"others,omitempty"`
}

type Payment struct {
	TransactionID string        `json:"transactionId" bson:"transactionId"`
	Status        PaymentStatus `json:"status" bson:"status"`
	QRCode        string        `json:"qrCode,omitempty" bson:"qrCode,omitempty"`
}

type Consultation struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DoctorID       primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	PatientID      primitive.ObjectID `json:"patientId" bson:"patientId"`
	CurrentIllness string             `json:"currentIllness" bson:"currentIllness"`
	RecentSurgery  string             `json:"recentSurgery,omitempty" bson:"recentSurgery,omitempty"`
	FamilyHistory  FamilyHistory      `json:"familyHistory" bson:"familyHistory"`
	Payment        Payment            `json:"payment" bson:"payment"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

// ConsultationView is a consultation with its doctor and patient
// references joined in for display.
type ConsultationView struct {
	Consultation `bson:",inline"`
	Doctor       *DoctorRef  `json:"doctor,omitempty" bson:"doctor,omitempty"`
	Patient      *PatientRef `json:"patient,omitempty" bson:"patient,omitempty"`
}
