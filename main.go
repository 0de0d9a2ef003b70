package main

import (
	"context"
	"log"

	"MediLink360/auth"
	"MediLink360/config"
	"MediLink360/controllers"
	"MediLink360/db"
	"MediLink360/jobs"
	"MediLink360/routes"
	"MediLink360/services"
	"MediLink360/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	startServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	database, err := db.Connect(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("Error connecting to MongoDB: ", err)
	}

	st := newStores(database)
	if err := st.doctors.EnsureIndexes(context.Background()); err != nil {
		log.Println("Error creating doctor indexes: ", err)
	}
	if err := st.patients.EnsureIndexes(context.Background()); err != nil {
		log.Println("Error creating patient indexes: ", err)
	}

	r := setupRouter(cfg, st)

	if !isTest {
		sweep := &jobs.OrphanSweep{
			Dir:           cfg.UploadDir,
			Doctors:       st.doctors,
			Patients:      st.patients,
			Prescriptions: st.prescriptions,
		}
		jobs.StartDailyScheduler(sweep)
	}

	if err := startServer(r, cfg.Port); err != nil {
		log.Fatal("Error starting server: ", err)
	}
}

// stores is the single set of collection handles shared by the router
// and the background jobs.
type stores struct {
	doctors       *store.Doctors
	patients      *store.Patients
	consultations *store.Consultations
	prescriptions *store.Prescriptions
}

func newStores(database *mongo.Database) stores {
	return stores{
		doctors:       store.NewDoctors(database),
		patients:      store.NewPatients(database),
		consultations: store.NewConsultations(database),
		prescriptions: store.NewPrescriptions(database),
	}
}

func setupRouter(cfg *config.Config, st stores) *gin.Engine {
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	files := services.NewFileService(cfg.UploadDir, cfg.MaxUploadSize)
	artifacts := services.NewArtifactService(cfg.UploadDir)

	doctorService := services.NewDoctorService(st.doctors, issuer)
	patientService := services.NewPatientService(st.patients, issuer)
	consultationService := services.NewConsultationService(st.consultations, st.doctors, st.patients, artifacts)
	prescriptionService := services.NewPrescriptionService(st.prescriptions, st.consultations, st.patients, files, artifacts)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Static("/uploads", cfg.UploadDir)

	routes.Routes(r, issuer, routes.Controllers{
		Doctor:       controllers.NewDoctorController(doctorService, files, cfg.CookieMaxAge),
		Patient:      controllers.NewPatientController(patientService, files, cfg.CookieMaxAge),
		Consultation: controllers.NewConsultationController(consultationService),
		Prescription: controllers.NewPrescriptionController(prescriptionService),
	})
	return r
}
