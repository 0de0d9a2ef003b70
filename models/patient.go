package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Age              int                `json:"age" bson:"age"`
	Email            string             `json:"email" bson:"email"`
	Phone            string             `json:"phone" bson:"phone"`
	HistoryOfIllness string             `json:"historyOfIllness,omitempty" bson:"historyOfIllness,omitempty"`
	HistoryOfSurgery string             `json:"historyOfSurgery,omitempty" bson:"historyOfSurgery,omitempty"`
	Password         string             `json:"-" bson:"password"`
	ProfilePicture   string             `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PatientRef is the slice of patient fields joined into consultation
// and prescription reads.
type PatientRef struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
}

func (p Patient) Ref() PatientRef {
	return PatientRef{ID: p.ID, Name: p.Name, Email: p.Email}
}
