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

type DoctorService struct {
	doctors store.DoctorStore
	issuer  *auth.Issuer
}

func NewDoctorService(doctors store.DoctorStore, issuer *auth.Issuer) *DoctorService {
	return &DoctorService{doctors: doctors, issuer: issuer}
}

type DoctorSignupInput struct {
	Name       string `form:"name" binding:"required"`
	Specialty  string `form:"specialty" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
	Phone      string `form:"phone" binding:"required"`
	// Pointer so that zero years of experience still passes required.
	Experience *int   `form:"experience" binding:"required"`
	Password   string `form:"password" binding:"required"`
}

type DoctorUpdateInput struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Specialty      *string `json:"specialty"`
	Phone          *string `json:"phone"`
	Experience     *int    `json:"experience"`
	ProfilePicture *string `json:"profilePicture"`
}

/*
* Hash the password before anything touches the store
* Let the unique indexes decide whether the account already exists
* Issue the token for the fresh account
 */
func (s *DoctorService) Signup(ctx context.Context, in DoctorSignupInput, profilePicture string) (*models.Doctor, string, error) {
	hashed, err := HashPassword(in.Password)
	if err != nil {
		log.Println("Error hashing password: ", err)
		return nil, "", err
	}

	doctor := &models.Doctor{
		Name:           in.Name,
		Specialty:      in.Specialty,
		Email:          in.Email,
		Phone:          in.Phone,
		Experience:     *in.Experience,
		Password:       hashed,
		ProfilePicture: profilePicture,
	}
	if err := s.doctors.Create(ctx, doctor); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, "", util.ValidationError(util.DOCTOR_ALREADY_EXISTS)
		}
		log.Println("Error from doctors.Create: ", err)
		return nil, "", err
	}

	token, err := s.issuer.Sign(doctor.ID.Hex(), doctor.Email)
	if err != nil {
		log.Println("Error signing token: ", err)
		return nil, "", err
	}
	return doctor, token, nil
}

func (s *DoctorService) Signin(ctx context.Context, email, password string) (*models.Doctor, string, error) {
	doctor, err := s.doctors.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", util.NotFoundError(util.DOCTOR_NOT_FOUND)
		}
		log.Println("Error from doctors.FindByEmail: ", err)
		return nil, "", err
	}

	if !CheckPassword(password, doctor.Password) {
		return nil, "", util.ValidationError(util.INVALID_CREDENTIALS)
	}

	token, err := s.issuer.Sign(doctor.ID.Hex(), doctor.Email)
	if err != nil {
		log.Println("Error signing token: ", err)
		return nil, "", err
	}
	return doctor, token, nil
}

func (s *DoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}
	doctor, err := s.doctors.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
		}
		log.Println("Error from doctors.FindByID: ", err)
		return nil, err
	}
	return doctor, nil
}

/*
* Only the provided fields make it into the update document
* doctorId and password are never updatable here
 */
func (s *DoctorService) Update(ctx context.Context, id string, in DoctorUpdateInput) (*models.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}

	fields := bson.M{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Specialty != nil {
		fields["specialty"] = *in.Specialty
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Experience != nil {
		fields["experience"] = *in.Experience
	}
	if in.ProfilePicture != nil {
		fields["profilePicture"] = *in.ProfilePicture
	}

	doctor, err := s.doctors.Update(ctx, oid, fields)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
		case errors.Is(err, store.ErrDuplicate):
			return nil, util.ValidationError(util.DOCTOR_ALREADY_EXISTS)
		}
		log.Println("Error from doctors.Update: ", err)
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorService) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}
	if newPassword == "" {
		return util.ValidationError(util.PASSWORD_REQUIRED)
	}

	doctor, err := s.doctors.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return util.NotFoundError(util.DOCTOR_NOT_FOUND)
		}
		log.Println("Error from doctors.FindByID: ", err)
		return err
	}
	if !CheckPassword(oldPassword, doctor.Password) {
		return util.ValidationError(util.OLD_PASSWORD_INCORRECT)
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		log.Println("Error hashing password: ", err)
		return err
	}
	if _, err := s.doctors.Update(ctx, oid, bson.M{"password": hashed}); err != nil {
		log.Println("Error from doctors.Update: ", err)
		return err
	}
	return nil
}

func (s *DoctorService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}
	if err := s.doctors.Delete(ctx, oid); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return util.NotFoundError(util.DOCTOR_NOT_FOUND)
		}
		log.Println("Error from doctors.Delete: ", err)
		return err
	}
	return nil
}

func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		log.Println("Error from doctors.List: ", err)
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, util.NotFoundError(util.NO_DOCTORS_FOUND)
	}
	return doctors, nil
}
