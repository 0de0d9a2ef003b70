package controllers

import (
	"net/http"

	"MediLink360/services"
	"MediLink360/util"

	"github.com/gin-gonic/gin"
)

type ConsultationController struct {
	service *services.ConsultationService
}

func NewConsultationController(service *services.ConsultationService) *ConsultationController {
	return &ConsultationController{service: service}
}

func (ctl *ConsultationController) Register(protected *gin.RouterGroup) {
	protected.POST("/consultation", ctl.Create)
	protected.GET("/consultations/doctor/:doctorId", ctl.GetByDoctor)
	protected.GET("/consultations/patient/:patientId", ctl.GetByPatient)
	protected.GET("/consultation/:id", ctl.GetByID)
	protected.GET("/consultations", ctl.GetAll)
	protected.PUT("/consultation/:id", ctl.Update)
	protected.DELETE("/consultation/:id", ctl.Delete)
}

func (ctl *ConsultationController) Create(c *gin.Context) {
	var in services.ConsultationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	consultation, err := ctl.service.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Consultation created successfully. Payment details recorded.",
		"consultation": consultation,
	})
}

func (ctl *ConsultationController) GetByDoctor(c *gin.Context) {
	consultations, err := ctl.service.GetByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, consultations)
}

func (ctl *ConsultationController) GetByPatient(c *gin.Context) {
	consultations, err := ctl.service.GetByPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, consultations)
}

func (ctl *ConsultationController) GetByID(c *gin.Context) {
	consultation, err := ctl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, consultation)
}

func (ctl *ConsultationController) GetAll(c *gin.Context) {
	consultations, err := ctl.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, consultations)
}

func (ctl *ConsultationController) Update(c *gin.Context) {
	var in services.ConsultationUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	consultation, err := ctl.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consultation updated successfully", "consultation": consultation})
}

func (ctl *ConsultationController) Delete(c *gin.Context) {
	if err := ctl.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("Consultation deleted successfully"))
}
