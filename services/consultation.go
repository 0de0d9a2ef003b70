package services

import (
	"context"
	"errors"
	"log"

	"MediLink360/models"
	"MediLink360/store"
	"MediLink360/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConsultationService is the ledger for consultation records. It
// checks referential existence of both parties before any write and
// performs the read-side joins for display.
type ConsultationService struct {
	consultations store.ConsultationStore
	doctors       store.DoctorStore
	patients      store.PatientStore
	artifacts     *ArtifactService
}

func NewConsultationService(consultations store.ConsultationStore, doctors store.DoctorStore, patients store.PatientStore, artifacts *ArtifactService) *ConsultationService {
	return &ConsultationService{
		consultations: consultations,
		doctors:       doctors,
		patients:      patients,
		artifacts:     artifacts,
	}
}

type ConsultationInput struct {
	DoctorID       string               `json:"doctorId" binding:"required"`
	PatientID      string               `json:"patientId" binding:"required"`
	CurrentIllness string               `json:"currentIllness" binding:"required"`
	RecentSurgery  string               `json:"recentSurgery"`
	FamilyHistory  models.FamilyHistory `json:"familyHistory"`
	TransactionID  string               `json:"transactionId"`
	Amount         string               `json:"amount"`
	Description    string               `json:"description"`
}

type ConsultationUpdateInput struct {
	CurrentIllness *string               `json:"currentIllness"`
	RecentSurgery  *string               `json:"recentSurgery"`
	FamilyHistory  *models.FamilyHistory `json:"familyHistory"`
	PaymentStatus  *models.PaymentStatus `json:"paymentStatus"`
}

/*
* Both parties must resolve before anything is written
* Transaction id is recorded as supplied, never verified externally
* Payment starts Pending; the QR is a presentation convenience, so a
* failure to render it does not fail the creation
 */
func (s *ConsultationService) Create(ctx context.Context, in ConsultationInput) (*models.Consultation, error) {
	doctorID, err := primitive.ObjectIDFromHex(in.DoctorID)
	if err != nil {
		return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}
	if _, err := s.doctors.FindByID(ctx, doctorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
		}
		log.Println("Error from doctors.FindByID: ", err)
		return nil, err
	}

	patientID, err := primitive.ObjectIDFromHex(in.PatientID)
	if err != nil {
		return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
	}
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
		}
		log.Println("Error from patients.FindByID: ", err)
		return nil, err
	}

	if in.TransactionID == "" {
		return nil, util.ValidationError(util.TRANSACTION_ID_REQUIRED)
	}
	if err := in.FamilyHistory.DiabeticStatus.Validate(); err != nil {
		return nil, util.ValidationError(err.Error())
	}

	consultation := &models.Consultation{
		DoctorID:       doctorID,
		PatientID:      patientID,
		CurrentIllness: in.CurrentIllness,
		RecentSurgery:  in.RecentSurgery,
		FamilyHistory:  in.FamilyHistory,
		Payment: models.Payment{
			TransactionID: in.TransactionID,
			Status:        models.PaymentPending,
		},
	}

	if in.Amount != "" {
		qr, err := s.artifacts.PaymentQR(in.TransactionID, in.Amount, in.Description)
		if err != nil {
			log.Println("Error rendering payment QR: ", err)
		} else {
			consultation.Payment.QRCode = qr
		}
	}

	if err := s.consultations.Create(ctx, consultation); err != nil {
		log.Println("Error from consultations.Create: ", err)
		return nil, err
	}
	return consultation, nil
}

// GetByDoctor lists a doctor's consultations with patient name and
// email joined in.
func (s *ConsultationService) GetByDoctor(ctx context.Context, doctorID string) ([]models.ConsultationView, error) {
	oid, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}
	consultations, err := s.consultations.FindByDoctor(ctx, oid)
	if err != nil {
		log.Println("Error from consultations.FindByDoctor: ", err)
		return nil, err
	}
	return s.populate(ctx, consultations, false, true), nil
}

// GetByPatient lists a patient's consultations with doctor name and
// specialty joined in.
func (s *ConsultationService) GetByPatient(ctx context.Context, patientID string) ([]models.ConsultationView, error) {
	oid, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
	}
	consultations, err := s.consultations.FindByPatient(ctx, oid)
	if err != nil {
		log.Println("Error from consultations.FindByPatient: ", err)
		return nil, err
	}
	return s.populate(ctx, consultations, true, false), nil
}

func (s *ConsultationService) GetByID(ctx context.Context, id string) (*models.ConsultationView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.CONSULTATION_NOT_FOUND)
	}
	consultation, err := s.consultations.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.CONSULTATION_NOT_FOUND)
		}
		log.Println("Error from consultations.FindByID: ", err)
		return nil, err
	}
	views := s.populate(ctx, []models.Consultation{*consultation}, true, true)
	return &views[0], nil
}

func (s *ConsultationService) GetAll(ctx context.Context) ([]models.ConsultationView, error) {
	consultations, err := s.consultations.FindAll(ctx)
	if err != nil {
		log.Println("Error from consultations.FindAll: ", err)
		return nil, err
	}
	if len(consultations) == 0 {
		return nil, util.NotFoundError(util.NO_CONSULTATIONS_FOUND)
	}
	return s.populate(ctx, consultations, true, true), nil
}

/*
* Doctor and patient linkage is immutable, so only clinical fields and
* the payment status are updatable
* Payment moves Pending -> Completed or Pending -> Failed and is
* terminal after that
 */
func (s *ConsultationService) Update(ctx context.Context, id string, in ConsultationUpdateInput) (*models.Consultation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.CONSULTATION_NOT_FOUND)
	}

	fields := bson.M{}
	if in.CurrentIllness != nil {
		fields["currentIllness"] = *in.CurrentIllness
	}
	if in.RecentSurgery != nil {
		fields["recentSurgery"] = *in.RecentSurgery
	}
	if in.FamilyHistory != nil {
		if err := in.FamilyHistory.DiabeticStatus.Validate(); err != nil {
			return nil, util.ValidationError(err.Error())
		}
		fields["familyHistory"] = *in.FamilyHistory
	}
	if in.PaymentStatus != nil {
		if err := in.PaymentStatus.Validate(); err != nil {
			return nil, util.ValidationError(err.Error())
		}
		existing, err := s.consultations.FindByID(ctx, oid)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, util.NotFoundError(util.CONSULTATION_NOT_FOUND)
			}
			log.Println("Error from consultations.FindByID: ", err)
			return nil, err
		}
		if !existing.Payment.Status.CanTransitionTo(*in.PaymentStatus) {
			return nil, util.ValidationError("payment status cannot change from " + string(existing.Payment.Status) + " to " + string(*in.PaymentStatus))
		}
		fields["payment.status"] = *in.PaymentStatus
	}

	// An empty $set is rejected by the server; a no-op update returns
	// the record as stored.
	if len(fields) == 0 {
		consultation, err := s.consultations.FindByID(ctx, oid)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, util.NotFoundError(util.CONSULTATION_NOT_FOUND)
			}
			log.Println("Error from consultations.FindByID: ", err)
			return nil, err
		}
		return consultation, nil
	}

	consultation, err := s.consultations.Update(ctx, oid, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.CONSULTATION_NOT_FOUND)
		}
		log.Println("Error from consultations.Update: ", err)
		return nil, err
	}
	return consultation, nil
}

func (s *ConsultationService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.NotFoundError(util.CONSULTATION_NOT_FOUND)
	}
	if err := s.consultations.Delete(ctx, oid); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return util.NotFoundError(util.CONSULTATION_NOT_FOUND)
		}
		log.Println("Error from consultations.Delete: ", err)
		return err
	}
	return nil
}

/*
* Explicit read-side join of doctor/patient reference fields
* Lookups are cached per call; a dangling reference leaves the ref nil
* instead of failing the read
 */
func (s *ConsultationService) populate(ctx context.Context, consultations []models.Consultation, withDoctor, withPatient bool) []models.ConsultationView {
	doctorRefs := make(map[primitive.ObjectID]*models.DoctorRef)
	patientRefs := make(map[primitive.ObjectID]*models.PatientRef)

	views := make([]models.ConsultationView, 0, len(consultations))
	for _, consultation := range consultations {
		view := models.ConsultationView{Consultation: consultation}

		if withDoctor {
			ref, seen := doctorRefs[consultation.DoctorID]
			if !seen {
				if doctor, err := s.doctors.FindByID(ctx, consultation.DoctorID); err == nil {
					r := doctor.Ref()
					ref = &r
				}
				doctorRefs[consultation.DoctorID] = ref
			}
			view.Doctor = ref
		}
		if withPatient {
			ref, seen := patientRefs[consultation.PatientID]
			if !seen {
				if patient, err := s.patients.FindByID(ctx, consultation.PatientID); err == nil {
					r := patient.Ref()
					ref = &r
				}
				patientRefs[consultation.PatientID] = ref
			}
			view.Patient = ref
		}
		views = append(views, view)
	}
	return views
}
