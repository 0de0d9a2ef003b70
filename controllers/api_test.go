package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"MediLink360/auth"
	"MediLink360/controllers"
	"MediLink360/routes"
	"MediLink360/services"
	"MediLink360/store/storetest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.Issuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	doctors := storetest.NewDoctors()
	patients := storetest.NewPatients()
	consultations := storetest.NewConsultations()
	prescriptions := storetest.NewPrescriptions()

	files := services.NewFileService(dir, 5<<20)
	artifacts := services.NewArtifactService(dir)

	r := gin.New()
	routes.Routes(r, issuer, routes.Controllers{
		Doctor:       controllers.NewDoctorController(services.NewDoctorService(doctors, issuer), files, 24*time.Hour),
		Patient:      controllers.NewPatientController(services.NewPatientService(patients, issuer), files, 24*time.Hour),
		Consultation: controllers.NewConsultationController(services.NewConsultationService(consultations, doctors, patients, artifacts)),
		Prescription: controllers.NewPrescriptionController(services.NewPrescriptionService(prescriptions, consultations, patients, files, artifacts)),
	})
	return r, issuer
}

func do(r *gin.Engine, method, path, token string, contentType string, body *bytes.Buffer) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	if payload != nil {
		if err := json.NewEncoder(body).Encode(payload); err != nil {
			panic(err)
		}
	}
	return do(r, method, path, token, "application/json", body)
}

func multipartForm(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for key, value := range fields {
		assert.NoError(t, w.WriteField(key, value))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		assert.NoError(t, err)
		_, err = part.Write(fileContent)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func signupDoctor(t *testing.T, r *gin.Engine, email, phone string) (id, token string) {
	t.Helper()
	body, contentType := multipartForm(t, map[string]string{
		"name": "Dr. House", "specialty": "Diagnostics", "email": email,
		"phone": phone, "experience": "12", "password": "vicodin",
	}, "", "", nil)
	w := do(r, http.MethodPost, "/user/doctor/signup", "", contentType, body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Doctor struct {
			ID string `json:"id"`
		} `json:"doctor"`
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Doctor.ID, resp.Token
}

func signupPatient(t *testing.T, r *gin.Engine, email, phone string) (id, token string) {
	t.Helper()
	body, contentType := multipartForm(t, map[string]string{
		"name": "Jane Roe", "age": "34", "email": email,
		"phone": phone, "password": "pw",
	}, "", "", nil)
	w := do(r, http.MethodPost, "/user/patient/signup", "", contentType, body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Patient struct {
			ID string `json:"id"`
		} `json:"patient"`
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Patient.ID, resp.Token
}

func createConsultation(t *testing.T, r *gin.Engine, token, doctorID, patientID string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/user/consultation", token, map[string]interface{}{
		"doctorId":       doctorID,
		"patientId":      patientID,
		"currentIllness": "persistent cough",
		"familyHistory":  map[string]string{"diabeticStatus": "Non-Diabetic"},
		"transactionId":  "txn-001",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Consultation struct {
			ID string `json:"id"`
		} `json:"consultation"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Consultation.ID
}

func TestSignupSigninFetch_NoPasswordLeaked(t *testing.T) {
	r, _ := newTestRouter(t)

	doctorID, _ := signupDoctor(t, r, "house@ppth.org", "111")

	w := doJSON(r, http.MethodPost, "/user/doctor/signin", "", map[string]string{
		"email": "house@ppth.org", "password": "vicodin",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Set-Cookie"), "jwt=")

	var signin struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &signin))
	assert.NotEmpty(t, signin.Token)

	w = do(r, http.MethodGet, "/user/doctor/"+doctorID, signin.Token, "", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var fetched map[string]map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	doctor := fetched["doctor"]
	assert.Equal(t, "Dr. House", doctor["name"])
	_, hasPassword := doctor["password"]
	assert.False(t, hasPassword, "password must never be returned")
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/user/doctors", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/user/doctors", "garbage-token", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDuplicateSignup(t *testing.T) {
	r, _ := newTestRouter(t)

	signupDoctor(t, r, "house@ppth.org", "111")

	body, contentType := multipartForm(t, map[string]string{
		"name": "Impostor", "specialty": "None", "email": "house@ppth.org",
		"phone": "999", "experience": "1", "password": "x",
	}, "", "", nil)
	w := do(r, http.MethodPost, "/user/doctor/signup", "", contentType, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Doctor already exists")
}

func TestSignup_ZeroValuedNumbers(t *testing.T) {
	r, _ := newTestRouter(t)

	// a freshly licensed doctor has 0 years of experience
	body, contentType := multipartForm(t, map[string]string{
		"name": "Dr. Chase", "specialty": "Intensive Care", "email": "chase@ppth.org",
		"phone": "444", "experience": "0", "password": "pw",
	}, "", "", nil)
	w := do(r, http.MethodPost, "/user/doctor/signup", "", contentType, body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body, contentType = multipartForm(t, map[string]string{
		"name": "Baby Roe", "age": "0", "email": "baby@example.com",
		"phone": "555", "password": "pw",
	}, "", "", nil)
	w = do(r, http.MethodPost, "/user/patient/signup", "", contentType, body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateConsultation_UnknownDoctor404(t *testing.T) {
	r, issuer := newTestRouter(t)
	token, err := issuer.Sign("someone", "a@b.c")
	assert.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/user/consultation", token, map[string]interface{}{
		"doctorId":       primitive.NewObjectID().Hex(),
		"patientId":      primitive.NewObjectID().Hex(),
		"currentIllness": "cough",
		"familyHistory":  map[string]string{"diabeticStatus": "Non-Diabetic"},
		"transactionId":  "txn-001",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Doctor not found")
}

func TestConsultationToPrescriptionFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	doctorID, doctorToken := signupDoctor(t, r, "house@ppth.org", "111")
	patientID, _ := signupPatient(t, r, "jane@example.com", "333")

	consultationID := createConsultation(t, r, doctorToken, doctorID, patientID)

	metadata, err := json.Marshal(map[string]string{
		"consultationId":   consultationID,
		"careInstructions": "rest and fluids",
		"medicines":        "Paracetamol 500mg",
	})
	assert.NoError(t, err)
	body, contentType := multipartForm(t, map[string]string{"metadata": string(metadata)}, "pdf", "rx.pdf", []byte("%PDF-1.4 uploaded"))

	w := do(r, http.MethodPost, "/user/prescription", doctorToken, contentType, body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Prescription struct {
			ID      string `json:"id"`
			PDFPath string `json:"pdfPath"`
		} `json:"prescription"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, strings.HasPrefix(created.Prescription.PDFPath, "/uploads/"))

	w = do(r, http.MethodGet, "/user/prescriptions/patient/"+patientID, doctorToken, "", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var list []struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
	assert.Equal(t, created.Prescription.ID, list[0].ID)
}

func TestPrescriptionsByPatient_Empty404(t *testing.T) {
	r, _ := newTestRouter(t)

	_, doctorToken := signupDoctor(t, r, "house@ppth.org", "111")
	patientID, _ := signupPatient(t, r, "jane@example.com", "333")

	w := do(r, http.MethodGet, "/user/prescriptions/patient/"+patientID, doctorToken, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No prescriptions found for this patient")
}

func TestAuthProtectedGreeting(t *testing.T) {
	r, issuer := newTestRouter(t)
	token, err := issuer.Sign("id-1", "doc@example.com")
	assert.NoError(t, err)

	w := do(r, http.MethodGet, "/auth/protected", token, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello doc@example.com", w.Body.String())
}
