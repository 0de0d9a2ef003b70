// Package storetest provides in-memory store implementations for
// tests. They mirror the MongoDB stores' contract: unique email/phone
// for identities, ErrNotFound/ErrDuplicate sentinels, partial $set
// style updates.
package storetest

import (
	"context"
	"errors"
	"sync"
	"time"

	"MediLink360/models"
	"MediLink360/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctors struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Doctor
}

func NewDoctors() *Doctors {
	return &Doctors{docs: make(map[primitive.ObjectID]models.Doctor)}
}

func (s *Doctors) Create(_ context.Context, doctor *models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.docs {
		if existing.Email == doctor.Email || existing.Phone == doctor.Phone {
			return store.ErrDuplicate
		}
	}
	doctor.ID = primitive.NewObjectID()
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = doctor.CreatedAt
	s.docs[doctor.ID] = *doctor
	return nil
}

func (s *Doctors) FindByID(_ context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctor, ok := s.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &doctor, nil
}

func (s *Doctors) FindByEmail(_ context.Context, email string) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doctor := range s.docs {
		if doctor.Email == email {
			d := doctor
			return &d, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Doctors) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctor, ok := s.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			doctor.Name = value.(string)
		case "email":
			doctor.Email = value.(string)
		case "specialty":
			doctor.Specialty = value.(string)
		case "phone":
			doctor.Phone = value.(string)
		case "experience":
			doctor.Experience = value.(int)
		case "profilePicture":
			doctor.ProfilePicture = value.(string)
		case "password":
			doctor.Password = value.(string)
		}
	}
	doctor.UpdatedAt = time.Now()
	s.docs[id] = doctor
	return &doctor, nil
}

func (s *Doctors) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *Doctors) List(_ context.Context) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctors := make([]models.Doctor, 0, len(s.docs))
	for _, doctor := range s.docs {
		doctors = append(doctors, doctor)
	}
	return doctors, nil
}

type Patients struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Patient
}

func NewPatients() *Patients {
	return &Patients{docs: make(map[primitive.ObjectID]models.Patient)}
}

func (s *Patients) Create(_ context.Context, patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.docs {
		if existing.Email == patient.Email || existing.Phone == patient.Phone {
			return store.ErrDuplicate
		}
	}
	patient.ID = primitive.NewObjectID()
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = patient.CreatedAt
	s.docs[patient.ID] = *patient
	return nil
}

func (s *Patients) FindByID(_ context.Context, id primitive.ObjectID) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patient, ok := s.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &patient, nil
}

func (s *Patients) FindByEmail(_ context.Context, email string) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, patient := range s.docs {
		if patient.Email == email {
			p := patient
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Patients) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patient, ok := s.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			patient.Name = value.(string)
		case "email":
			patient.Email = value.(string)
		case "age":
			patient.Age = value.(int)
		case "phone":
			patient.Phone = value.(string)
		case "historyOfIllness":
			patient.HistoryOfIllness = value.(string)
		case "historyOfSurgery":
			patient.HistoryOfSurgery = value.(string)
		case "profilePicture":
			patient.ProfilePicture = value.(string)
		case "password":
			patient.Password = value.(string)
		}
	}
	patient.UpdatedAt = time.Now()
	s.docs[id] = patient
	return &patient, nil
}

func (s *Patients) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *Patients) List(_ context.Context) ([]models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patients := make([]models.Patient, 0, len(s.docs))
	for _, patient := range s.docs {
		patients = append(patients, patient)
	}
	return patients, nil
}

type Consultations struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Consultation
}

func NewConsultations() *Consultations {
	return &Consultations{docs: make(map[primitive.ObjectID]models.Consultation)}
}

func (s *Consultations) Create(_ context.Context, consultation *models.Consultation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	consultation.ID = primitive.NewObjectID()
	consultation.CreatedAt = time.Now()
	s.docs[consultation.ID] = *consultation
	return nil
}

func (s *Consultations) FindByID(_ context.Context, id primitive.ObjectID) (*models.Consultation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	consultation, ok := s.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &consultation, nil
}

func (s *Consultations) FindByDoctor(_ context.Context, doctorID primitive.ObjectID) ([]models.Consultation, error) {
	return s.filter(func(c models.Consultation) bool { return c.DoctorID == doctorID }), nil
}

func (s *Consultations) FindByPatient(_ context.Context, patientID primitive.ObjectID) ([]models.Consultation, error) {
	return s.filter(func(c models.Consultation) bool { return c.PatientID == patientID }), nil
}

func (s *Consultations) FindAll(_ context.Context) ([]models.Consultation, error) {
	return s.filter(func(models.Consultation) bool { return true }), nil
}

func (s *Consultations) filter(keep func(models.Consultation) bool) []models.Consultation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Consultation
	for _, consultation := range s.docs {
		if keep(consultation) {
			out = append(out, consultation)
		}
	}
	return out
}

func (s *Consultations) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Consultation, error) {
	// The real store has no timestamp to stamp, so an empty fields map
	// would reach the server as an empty $set, which it rejects.
	if len(fields) == 0 {
		return nil, errors.New("'$set' is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	consultation, ok := s.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "currentIllness":
			consultation.CurrentIllness = value.(string)
		case "recentSurgery":
			consultation.RecentSurgery = value.(string)
		case "familyHistory":
			consultation.FamilyHistory = value.(models.FamilyHistory)
		case "payment.status":
			consultation.Payment.Status = value.(models.PaymentStatus)
		}
	}
	s.docs[id] = consultation
	return &consultation, nil
}

func (s *Consultations) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

type Prescriptions struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Prescription
}

func NewPrescriptions() *Prescriptions {
	return &Prescriptions{docs: make(map[primitive.ObjectID]models.Prescription)}
}

func (s *Prescriptions) Create(_ context.Context, prescription *models.Prescription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prescription.ID = primitive.NewObjectID()
	prescription.CreatedAt = time.Now()
	s.docs[prescription.ID] = *prescription
	return nil
}

func (s *Prescriptions) FindByID(_ context.Context, id primitive.ObjectID) (*models.Prescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prescription, ok := s.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &prescription, nil
}

func (s *Prescriptions) FindByDoctor(_ context.Context, doctorID primitive.ObjectID) ([]models.Prescription, error) {
	return s.filter(func(p models.Prescription) bool { return p.DoctorID == doctorID }), nil
}

func (s *Prescriptions) FindByPatient(_ context.Context, patientID primitive.ObjectID) ([]models.Prescription, error) {
	return s.filter(func(p models.Prescription) bool { return p.PatientID == patientID }), nil
}

func (s *Prescriptions) FindByDoctorAndPatient(_ context.Context, doctorID, patientID primitive.ObjectID) ([]models.Prescription, error) {
	return s.filter(func(p models.Prescription) bool {
		return p.DoctorID == doctorID && p.PatientID == patientID
	}), nil
}

func (s *Prescriptions) FindAll(_ context.Context) ([]models.Prescription, error) {
	return s.filter(func(models.Prescription) bool { return true }), nil
}

func (s *Prescriptions) filter(keep func(models.Prescription) bool) []models.Prescription {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Prescription
	for _, prescription := range s.docs {
		if keep(prescription) {
			out = append(out, prescription)
		}
	}
	return out
}

func (s *Prescriptions) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Prescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prescription, ok := s.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "careInstructions":
			prescription.CareInstructions = value.(string)
		case "medicines":
			prescription.Medicines = value.(string)
		case "pdfPath":
			prescription.PDFPath = value.(string)
		}
	}
	prescription.UpdatedAt = time.Now()
	s.docs[id] = prescription
	return &prescription, nil
}

func (s *Prescriptions) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}
