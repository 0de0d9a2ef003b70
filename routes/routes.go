package routes

import (
	"net/http"

	"MediLink360/auth"
	"MediLink360/controllers"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Doctor       *controllers.DoctorController
	Patient      *controllers.PatientController
	Consultation *controllers.ConsultationController
	Prescription *controllers.PrescriptionController
}

func Routes(r *gin.Engine, issuer *auth.Issuer, ctl Controllers) {

	//public
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the MediLink API")
	})
	r.GET("/auth/protected", auth.Middleware(issuer), func(c *gin.Context) {
		c.String(http.StatusOK, "Hello "+c.GetString(auth.PrincipalEmail))
	})

	public := r.Group("/user")
	//privateroutes
	protected := r.Group("/user")
	protected.Use(auth.Middleware(issuer))

	ctl.Doctor.Register(public, protected)
	ctl.Patient.Register(public, protected)
	ctl.Consultation.Register(protected)
	ctl.Prescription.Register(protected)
}
