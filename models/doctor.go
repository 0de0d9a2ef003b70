package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Specialty      string             `json:"specialty" bson:"specialty"`
	Email          string             `json:"email" bson:"email"`
	Phone          string             `json:"phone" bson:"phone"`
	Experience     int                `json:"experience" bson:"experience"`
	Password       string             `json:"-" bson:"password"`
	ProfilePicture string             `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DoctorRef is the slice of doctor fields joined into consultation and
// prescription reads.
type DoctorRef struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Specialty string             `json:"specialty" bson:"specialty"`
}

func (d Doctor) Ref() DoctorRef {
	return DoctorRef{ID: d.ID, Name: d.Name, Specialty: d.Specialty}
}
