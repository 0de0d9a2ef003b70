package controllers

import (
	"encoding/json"
	"net/http"

	"MediLink360/services"
	"MediLink360/util"

	"github.com/gin-gonic/gin"
)

type PrescriptionController struct {
	service *services.PrescriptionService
}

func NewPrescriptionController(service *services.PrescriptionService) *PrescriptionController {
	return &PrescriptionController{service: service}
}

func (ctl *PrescriptionController) Register(protected *gin.RouterGroup) {
	protected.POST("/prescription", ctl.Create)
	protected.GET("/prescriptions/doctor/:doctorId", ctl.GetByDoctor)
	protected.GET("/prescription/:id", ctl.GetByID)
	protected.PUT("/prescription/:id", ctl.Update)
	protected.POST("/prescription/:id/pdf", ctl.RegeneratePDF)
	protected.DELETE("/prescription/:id", ctl.Delete)
	protected.GET("/prescriptions/patient/:patientId", ctl.GetByPatient)
	protected.GET("/prescriptions/doctor/:doctorId/patient/:patientId", ctl.GetByDoctorAndPatient)
}

/*
* Multipart body: a "metadata" JSON part plus an optional "pdf" part
* The metadata must at least name the consultation
* The file, when present, is handed to the service as the artifact
 */
func (ctl *PrescriptionController) Create(c *gin.Context) {
	metadata := c.PostForm("metadata")
	if metadata == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "metadata part is required"})
		return
	}

	var in services.PrescriptionInput
	if err := json.Unmarshal([]byte(metadata), &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "metadata is not valid JSON"})
		return
	}
	if in.ConsultationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "consultationId is required"})
		return
	}

	upload, err := c.FormFile("pdf")
	if err != nil {
		upload = nil
	}

	prescription, err := ctl.service.Create(c.Request.Context(), in, upload)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Prescription created successfully", "prescription": prescription})
}

func (ctl *PrescriptionController) GetByDoctor(c *gin.Context) {
	prescriptions, err := ctl.service.GetByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (ctl *PrescriptionController) GetByID(c *gin.Context) {
	prescription, err := ctl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, prescription)
}

func (ctl *PrescriptionController) GetByPatient(c *gin.Context) {
	prescriptions, err := ctl.service.GetByPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (ctl *PrescriptionController) GetByDoctorAndPatient(c *gin.Context) {
	prescriptions, err := ctl.service.GetByDoctorAndPatient(c.Request.Context(), c.Param("doctorId"), c.Param("patientId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (ctl *PrescriptionController) Update(c *gin.Context) {
	var in services.PrescriptionUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	prescription, err := ctl.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prescription updated successfully", "prescription": prescription})
}

func (ctl *PrescriptionController) RegeneratePDF(c *gin.Context) {
	prescription, err := ctl.service.RegeneratePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PDF generated successfully", "pdfPath": prescription.PDFPath, "prescription": prescription})
}

func (ctl *PrescriptionController) Delete(c *gin.Context) {
	if err := ctl.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("Prescription deleted successfully"))
}
