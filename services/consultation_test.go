package services

import (
	"context"
	"testing"
	"time"

	"MediLink360/auth"
	"MediLink360/models"
	"MediLink360/store/storetest"
	"MediLink360/util"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ledgerFixture struct {
	svc     *ConsultationService
	doctor  *models.Doctor
	patient *models.Patient
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	doctors := storetest.NewDoctors()
	patients := storetest.NewPatients()

	doctor, _, err := NewDoctorService(doctors, issuer).Signup(context.Background(), doctorInput("house@ppth.org", "111"), "")
	assert.NoError(t, err)
	age := 34
	patient, _, err := NewPatientService(patients, issuer).Signup(context.Background(), PatientSignupInput{
		Name: "Jane Roe", Age: &age, Email: "jane@example.com", Phone: "333", Password: "pw",
	}, "")
	assert.NoError(t, err)

	return &ledgerFixture{
		svc:     NewConsultationService(storetest.NewConsultations(), doctors, patients, NewArtifactService(t.TempDir())),
		doctor:  doctor,
		patient: patient,
	}
}

func (f *ledgerFixture) input() ConsultationInput {
	return ConsultationInput{
		DoctorID:       f.doctor.ID.Hex(),
		PatientID:      f.patient.ID.Hex(),
		CurrentIllness: "persistent cough",
		FamilyHistory:  models.FamilyHistory{DiabeticStatus: models.NonDiabetic},
		TransactionID:  "txn-001",
	}
}

func TestCreateConsultation(t *testing.T) {
	f := newLedgerFixture(t)

	consultation, err := f.svc.Create(context.Background(), f.input())
	assert.NoError(t, err)
	assert.False(t, consultation.ID.IsZero())
	assert.Equal(t, f.doctor.ID, consultation.DoctorID)
	assert.Equal(t, f.patient.ID, consultation.PatientID)
	assert.Equal(t, models.PaymentPending, consultation.Payment.Status)
	assert.Empty(t, consultation.Payment.QRCode)
	assert.False(t, consultation.CreatedAt.IsZero())
}

func TestCreateConsultation_UnknownDoctor(t *testing.T) {
	f := newLedgerFixture(t)

	in := f.input()
	in.DoctorID = primitive.NewObjectID().Hex()
	_, err := f.svc.Create(context.Background(), in)
	assert.Equal(t, 404, util.StatusOf(err))
	assert.Equal(t, util.DOCTOR_NOT_FOUND, err.Error())
}

func TestCreateConsultation_UnknownPatient(t *testing.T) {
	f := newLedgerFixture(t)

	in := f.input()
	in.PatientID = primitive.NewObjectID().Hex()
	_, err := f.svc.Create(context.Background(), in)
	assert.Equal(t, 404, util.StatusOf(err))
	assert.Equal(t, util.PATIENT_NOT_FOUND, err.Error())
}

func TestCreateConsultation_MissingTransaction(t *testing.T) {
	f := newLedgerFixture(t)

	in := f.input()
	in.TransactionID = ""
	_, err := f.svc.Create(context.Background(), in)
	assert.Equal(t, 400, util.StatusOf(err))
	assert.Equal(t, util.TRANSACTION_ID_REQUIRED, err.Error())
}

func TestCreateConsultation_UnknownDiabeticStatus(t *testing.T) {
	f := newLedgerFixture(t)

	in := f.input()
	in.FamilyHistory.DiabeticStatus = "Maybe"
	_, err := f.svc.Create(context.Background(), in)
	assert.Equal(t, 400, util.StatusOf(err))
}

func TestCreateConsultation_PaymentQR(t *testing.T) {
	f := newLedgerFixture(t)

	in := f.input()
	in.Amount = "500"
	in.Description = "General consultation"
	consultation, err := f.svc.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.Contains(t, consultation.Payment.QRCode, "data:image/png;base64,")
}

func TestConsultationReads_Populate(t *testing.T) {
	f := newLedgerFixture(t)
	created, err := f.svc.Create(context.Background(), f.input())
	assert.NoError(t, err)

	byDoctor, err := f.svc.GetByDoctor(context.Background(), f.doctor.ID.Hex())
	assert.NoError(t, err)
	assert.Len(t, byDoctor, 1)
	assert.Nil(t, byDoctor[0].Doctor)
	assert.Equal(t, "Jane Roe", byDoctor[0].Patient.Name)
	assert.Equal(t, "jane@example.com", byDoctor[0].Patient.Email)

	byPatient, err := f.svc.GetByPatient(context.Background(), f.patient.ID.Hex())
	assert.NoError(t, err)
	assert.Len(t, byPatient, 1)
	assert.Equal(t, "Dr. House", byPatient[0].Doctor.Name)
	assert.Equal(t, "Diagnostics", byPatient[0].Doctor.Specialty)
	assert.Nil(t, byPatient[0].Patient)

	byID, err := f.svc.GetByID(context.Background(), created.ID.Hex())
	assert.NoError(t, err)
	assert.NotNil(t, byID.Doctor)
	assert.NotNil(t, byID.Patient)

	all, err := f.svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetAllConsultations_Empty(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.GetAll(context.Background())
	assert.Equal(t, 404, util.StatusOf(err))
	assert.Equal(t, util.NO_CONSULTATIONS_FOUND, err.Error())
}

func TestUpdateConsultation_PaymentStateMachine(t *testing.T) {
	f := newLedgerFixture(t)
	created, err := f.svc.Create(context.Background(), f.input())
	assert.NoError(t, err)

	completed := models.PaymentCompleted
	updated, err := f.svc.Update(context.Background(), created.ID.Hex(), ConsultationUpdateInput{PaymentStatus: &completed})
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, updated.Payment.Status)

	// terminal: no way back out of Completed
	failed := models.PaymentFailed
	_, err = f.svc.Update(context.Background(), created.ID.Hex(), ConsultationUpdateInput{PaymentStatus: &failed})
	assert.Equal(t, 400, util.StatusOf(err))

	pending := models.PaymentPending
	_, err = f.svc.Update(context.Background(), created.ID.Hex(), ConsultationUpdateInput{PaymentStatus: &pending})
	assert.Equal(t, 400, util.StatusOf(err))
}

func TestUpdateConsultation_ClinicalFields(t *testing.T) {
	f := newLedgerFixture(t)
	created, err := f.svc.Create(context.Background(), f.input())
	assert.NoError(t, err)

	illness := "migraine"
	updated, err := f.svc.Update(context.Background(), created.ID.Hex(), ConsultationUpdateInput{CurrentIllness: &illness})
	assert.NoError(t, err)
	assert.Equal(t, "migraine", updated.CurrentIllness)
	// linkage immutable through update
	assert.Equal(t, created.DoctorID, updated.DoctorID)
	assert.Equal(t, created.PatientID, updated.PatientID)
}

func TestUpdateConsultation_NoFields(t *testing.T) {
	f := newLedgerFixture(t)
	created, err := f.svc.Create(context.Background(), f.input())
	assert.NoError(t, err)

	// nothing set in the input: the record comes back unchanged
	updated, err := f.svc.Update(context.Background(), created.ID.Hex(), ConsultationUpdateInput{})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CurrentIllness, updated.CurrentIllness)
	assert.Equal(t, created.Payment, updated.Payment)

	_, err = f.svc.Update(context.Background(), primitive.NewObjectID().Hex(), ConsultationUpdateInput{})
	assert.Equal(t, 404, util.StatusOf(err))
	assert.Equal(t, util.CONSULTATION_NOT_FOUND, err.Error())
}

func TestDeleteConsultation(t *testing.T) {
	f := newLedgerFixture(t)
	created, err := f.svc.Create(context.Background(), f.input())
	assert.NoError(t, err)

	assert.NoError(t, f.svc.Delete(context.Background(), created.ID.Hex()))
	err = f.svc.Delete(context.Background(), created.ID.Hex())
	assert.Equal(t, 404, util.StatusOf(err))
	assert.Equal(t, util.CONSULTATION_NOT_FOUND, err.Error())
}
