package main

import (
	"context"
	"testing"
	"time"

	"MediLink360/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The driver defers I/O until the first operation, so a router can be
// assembled against an unreachable database.
func lazyDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("medilink_test")
}

func TestSetupRouter_RegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:          "5000",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		CookieMaxAge:  24 * time.Hour,
		UploadDir:     t.TempDir(),
		MaxUploadSize: 5 << 20,
	}

	r := setupRouter(cfg, newStores(lazyDatabase(t)))

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /user/doctor/signup",
		"POST /user/doctor/signin",
		"GET /user/doctor/:id",
		"GET /user/doctors",
		"POST /user/patient/signup",
		"POST /user/patient/signin",
		"POST /user/consultation",
		"GET /user/consultations/doctor/:doctorId",
		"GET /user/consultations/patient/:patientId",
		"GET /user/consultations",
		"POST /user/prescription",
		"POST /user/prescription/:id/pdf",
		"GET /user/prescriptions/doctor/:doctorId",
		"GET /user/prescriptions/patient/:patientId",
		"GET /user/prescriptions/doctor/:doctorId/patient/:patientId",
		"GET /auth/protected",
		"GET /",
	} {
		assert.True(t, registered[want], "route not registered: %s", want)
	}
}
