package services

import (
	"context"
	"errors"
	"log"
	"mime/multipart"

	"MediLink360/models"
	"MediLink360/store"
	"MediLink360/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrescriptionService owns prescription records and their PDF
// artifacts. Every prescription carries a resolvable artifact path;
// the PDF is either the caller's upload or generated here from the
// fixed template.
type PrescriptionService struct {
	prescriptions store.PrescriptionStore
	consultations store.ConsultationStore
	patients      store.PatientStore
	files         *FileService
	artifacts     *ArtifactService
}

func NewPrescriptionService(prescriptions store.PrescriptionStore, consultations store.ConsultationStore, patients store.PatientStore, files *FileService, artifacts *ArtifactService) *PrescriptionService {
	return &PrescriptionService{
		prescriptions: prescriptions,
		consultations: consultations,
		patients:      patients,
		files:         files,
		artifacts:     artifacts,
	}
}

type PrescriptionInput struct {
	ConsultationID   string `json:"consultationId" binding:"required"`
	CareInstructions string `json:"careInstructions"`
	Medicines        string `json:"medicines"`
}

type PrescriptionUpdateInput struct {
	CareInstructions *string `json:"careInstructions"`
	Medicines        *string `json:"medicines"`
}

/*
* The consultation must resolve before anything is written
* Doctor and patient ids are copied from it onto the new record
* The artifact is the upload when one is supplied, otherwise the
* generated template PDF; without either the record is rejected
 */
func (s *PrescriptionService) Create(ctx context.Context, in PrescriptionInput, upload *multipart.FileHeader) (*models.Prescription, error) {
	consultationID, err := primitive.ObjectIDFromHex(in.ConsultationID)
	if err != nil {
		return nil, util.NotFoundError(util.CONSULTATION_NOT_FOUND)
	}
	consultation, err := s.consultations.FindByID(ctx, consultationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.CONSULTATION_NOT_FOUND)
		}
		log.Println("Error from consultations.FindByID: ", err)
		return nil, err
	}

	if in.CareInstructions == "" && upload == nil {
		return nil, util.ValidationError("Care instructions or a prescription PDF is required")
	}

	var pdfPath string
	if upload != nil {
		pdfPath, err = s.files.SavePDF(upload, "pdf")
		if err != nil {
			return nil, err
		}
	} else {
		patient, err := s.patients.FindByID(ctx, consultation.PatientID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
			}
			log.Println("Error from patients.FindByID: ", err)
			return nil, err
		}
		pdfPath, err = s.artifacts.GeneratePrescriptionPDF(patient.Name, patient.Email, in.CareInstructions, in.Medicines)
		if err != nil {
			log.Println("Error generating prescription PDF: ", err)
			return nil, err
		}
	}
	if pdfPath == "" {
		return nil, util.ValidationError(util.PDF_REQUIRED)
	}

	prescription := &models.Prescription{
		ConsultationID:   consultationID,
		DoctorID:         consultation.DoctorID,
		PatientID:        consultation.PatientID,
		CareInstructions: in.CareInstructions,
		Medicines:        in.Medicines,
		PDFPath:          pdfPath,
	}
	if err := s.prescriptions.Create(ctx, prescription); err != nil {
		log.Println("Error from prescriptions.Create: ", err)
		return nil, err
	}
	return prescription, nil
}

func (s *PrescriptionService) GetByDoctor(ctx context.Context, doctorID string) ([]models.PrescriptionView, error) {
	oid, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}
	prescriptions, err := s.prescriptions.FindByDoctor(ctx, oid)
	if err != nil {
		log.Println("Error from prescriptions.FindByDoctor: ", err)
		return nil, err
	}
	return s.populate(ctx, prescriptions), nil
}

func (s *PrescriptionService) GetByID(ctx context.Context, id string) (*models.PrescriptionView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.PRESCRIPTION_NOT_FOUND)
	}
	prescription, err := s.prescriptions.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.PRESCRIPTION_NOT_FOUND)
		}
		log.Println("Error from prescriptions.FindByID: ", err)
		return nil, err
	}
	views := s.populate(ctx, []models.Prescription{*prescription})
	return &views[0], nil
}

// GetByPatient reports the empty result as a 404 with an explicit
// empty-collection message, never a hard failure.
func (s *PrescriptionService) GetByPatient(ctx context.Context, patientID string) ([]models.PrescriptionView, error) {
	oid, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, util.NotFoundError(util.NO_PRESCRIPTIONS_FOUND)
	}
	prescriptions, err := s.prescriptions.FindByPatient(ctx, oid)
	if err != nil {
		log.Println("Error from prescriptions.FindByPatient: ", err)
		return nil, err
	}
	if len(prescriptions) == 0 {
		return nil, util.NotFoundError(util.NO_PRESCRIPTIONS_FOUND)
	}
	return s.populate(ctx, prescriptions), nil
}

func (s *PrescriptionService) GetByDoctorAndPatient(ctx context.Context, doctorID, patientID string) ([]models.PrescriptionView, error) {
	doctorOID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}
	patientOID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
	}
	prescriptions, err := s.prescriptions.FindByDoctorAndPatient(ctx, doctorOID, patientOID)
	if err != nil {
		log.Println("Error from prescriptions.FindByDoctorAndPatient: ", err)
		return nil, err
	}
	return s.populate(ctx, prescriptions), nil
}

func (s *PrescriptionService) Update(ctx context.Context, id string, in PrescriptionUpdateInput) (*models.Prescription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.PRESCRIPTION_NOT_FOUND)
	}

	fields := bson.M{}
	if in.CareInstructions != nil {
		fields["careInstructions"] = *in.CareInstructions
	}
	if in.Medicines != nil {
		fields["medicines"] = *in.Medicines
	}

	prescription, err := s.prescriptions.Update(ctx, oid, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.PRESCRIPTION_NOT_FOUND)
		}
		log.Println("Error from prescriptions.Update: ", err)
		return nil, err
	}
	return prescription, nil
}

/*
* Rebuilds the template PDF from the stored clinical text
* The fresh artifact replaces the path on the record; the old file is
* left for the orphan sweep
 */
func (s *PrescriptionService) RegeneratePDF(ctx context.Context, id string) (*models.Prescription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.PRESCRIPTION_NOT_FOUND)
	}
	prescription, err := s.prescriptions.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.PRESCRIPTION_NOT_FOUND)
		}
		log.Println("Error from prescriptions.FindByID: ", err)
		return nil, err
	}

	patient, err := s.patients.FindByID(ctx, prescription.PatientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
		}
		log.Println("Error from patients.FindByID: ", err)
		return nil, err
	}

	pdfPath, err := s.artifacts.GeneratePrescriptionPDF(patient.Name, patient.Email, prescription.CareInstructions, prescription.Medicines)
	if err != nil {
		log.Println("Error generating prescription PDF: ", err)
		return nil, err
	}

	updated, err := s.prescriptions.Update(ctx, oid, bson.M{"pdfPath": pdfPath})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.NotFoundError(util.PRESCRIPTION_NOT_FOUND)
		}
		log.Println("Error from prescriptions.Update: ", err)
		return nil, err
	}
	return updated, nil
}

func (s *PrescriptionService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.NotFoundError(util.PRESCRIPTION_NOT_FOUND)
	}
	if err := s.prescriptions.Delete(ctx, oid); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return util.NotFoundError(util.PRESCRIPTION_NOT_FOUND)
		}
		log.Println("Error from prescriptions.Delete: ", err)
		return err
	}
	return nil
}

// populate joins patient name and email into each row for display.
func (s *PrescriptionService) populate(ctx context.Context, prescriptions []models.Prescription) []models.PrescriptionView {
	patientRefs := make(map[primitive.ObjectID]*models.PatientRef)

	views := make([]models.PrescriptionView, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		view := models.PrescriptionView{Prescription: prescription}

		ref, seen := patientRefs[prescription.PatientID]
		if !seen {
			if patient, err := s.patients.FindByID(ctx, prescription.PatientID); err == nil {
				r := patient.Ref()
				ref = &r
			}
			patientRefs[prescription.PatientID] = ref
		}
		view.Patient = ref
		views = append(views, view)
	}
	return views
}
