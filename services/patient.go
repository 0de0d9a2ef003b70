package services

import (
	"context"
	"errors"
	"log"

	"MediLink360/auth"
	"MediLink360/models"
	"MediLink360/store"
	"MediLink360/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientService struct {
	patients store.PatientStore
	issuer   *auth.Issuer
}

func NewPatientService(patients store.PatientStore, issuer *auth.Issuer) *PatientService {
	return &PatientService{patients: patients, issuer: issuer}
}

type PatientSignupInput struct {
	Name             string `form:"name" binding:"required"`
	Age              *int   `form:"age" binding:"required"`
	Email            string `form:"email" binding:"required,email"`
	Phone            string `form:"phone" binding:"required"`
	HistoryOfIllness string `form:"historyOfIllness"`
	HistoryOfSurgery string `form:"historyOfSurgery"`
	Password         string `form:"password" binding:"required"`
}

type PatientUpdateInput struct {
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	Age              *int    `json:"age"`
	Phone            *string `json:"phone"`
	HistoryOfIllness *string `json:"historyOfIllness"`
	HistoryOfSurgery *string `json:"historyOfSurgery"`
	ProfilePicture   *string `json:"profilePicture"`
}

func (s *PatientService) Signup(ctx context.Context, in PatientSignupInput, profilePicture string) (*models.Patient, string, error) {
	hashed, err := HashPassword(in.Password)
	if err != nil {
		log.Println("Error hashing password: ", err)
		return nil, "", err
	}

	patient := &models.Patient{
		Name:             in.Name,
		Age:              *in.Age,
		Email:            in.Email,
		Phone:            in.Phone,
		HistoryOfIllness: in.HistoryOfIllness,
		HistoryOfSurgery: in.HistoryOfSurgery,
		Password:         hashed,
		ProfilePicture:   profilePicture,
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, "", util.ValidationError(util.PATIENT_ALREADY_EXISTS)
		}
		log.Println("Error from patients.Create: ", err)
		return nil, "", err
	}

	token, err := s.issuer.Sign(patient.ID.Hex(), patient.Email)
	if err != nil {
		log.Println("Error signing token: ", err)
		return nil, "", err
	}
	return patient, token, nil
}

func (s *PatientService) Signin(ctx context.Context, email, password string) (*models.Patient, string, error) {
	patient, err := s.patients.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", util.NotFoundError(util.PATIENT_NOT_FOUND)
		}
		log.Println("Error from patients.FindByEmail: ", err)
		return nil, "", err
	}

	if !CheckPassword(password, patient.Password) {
		return nil, "", util.ValidationError(util.INVALID_CREDENTIALS)
	}

	token, err := s.issuer.Sign(patient.ID.Hex(), patient.Email)
	if err != nil {
		log.Println("Error signing token: ", err)
		return nil, "", err
	}
	return patient, token, nil
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
	}
	patient, err := s.patients.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
		}
		log.Println("Error from patients.FindByID: ", err)
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) Update(ctx context.Context, id string, in PatientUpdateInput) (*models.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
	}

	fields := bson.M{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Age != nil {
		fields["age"] = *in.Age
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.HistoryOfIllness != nil {
		fields["historyOfIllness"] = *in.HistoryOfIllness
	}
	if in.HistoryOfSurgery != nil {
		fields["historyOfSurgery"] = *in.HistoryOfSurgery
	}
	if in.ProfilePicture != nil {
		fields["profilePicture"] = *in.ProfilePicture
	}

	patient, err := s.patients.Update(ctx, oid, fields)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
		case errors.Is(err, store.ErrDuplicate):
			return nil, util.ValidationError(util.PATIENT_ALREADY_EXISTS)
		}
		log.Println("Error from patients.Update: ", err)
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.NotFoundError(util.PATIENT_NOT_FOUND)
	}
	if newPassword == "" {
		return util.ValidationError(util.PASSWORD_REQUIRED)
	}

	patient, err := s.patients.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return util.NotFoundError(util.PATIENT_NOT_FOUND)
		}
		log.Println("Error from patients.FindByID: ", err)
		return err
	}
	if !CheckPassword(oldPassword, patient.Password) {
		return util.ValidationError(util.OLD_PASSWORD_INCORRECT)
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		log.Println("Error hashing password: ", err)
		return err
	}
	if _, err := s.patients.Update(ctx, oid, bson.M{"password": hashed}); err != nil {
		log.Println("Error from patients.Update: ", err)
		return err
	}
	return nil
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.NotFoundError(util.PATIENT_NOT_FOUND)
	}
	if err := s.patients.Delete(ctx, oid); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return util.NotFoundError(util.PATIENT_NOT_FOUND)
		}
		log.Println("Error from patients.Delete: ", err)
		return err
	}
	return nil
}
