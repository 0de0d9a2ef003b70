package controllers

import (
	"net/http"
	"time"

	"MediLink360/services"
	"MediLink360/util"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	service      *services.PatientService
	files        *services.FileService
	cookieMaxAge time.Duration
}

func NewPatientController(service *services.PatientService, files *services.FileService, cookieMaxAge time.Duration) *PatientController {
	return &PatientController{service: service, files: files, cookieMaxAge: cookieMaxAge}
}

func (ctl *PatientController) Register(public, protected *gin.RouterGroup) {
	public.POST("/patient/signup", ctl.Signup)
	public.POST("/patient/signin", ctl.Signin)
	protected.GET("/patient/:id", ctl.GetByID)
	protected.PUT("/patient/:id", ctl.Update)
	protected.PUT("/patient/password/:id", ctl.UpdatePassword)
	protected.DELETE("/patient/:id", ctl.Delete)
}

func (ctl *PatientController) Signup(c *gin.Context) {
	var in services.PatientSignupInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var profilePicture string
	if file, err := c.FormFile("profilePicture"); err == nil {
		profilePicture, err = ctl.files.SaveImage(file, "profilePicture")
		if err != nil {
			c.JSON(util.StatusOf(err), util.FailedResponse(err))
			return
		}
	}

	patient, token, err := ctl.service.Signup(c.Request.Context(), in, profilePicture)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}

	setTokenCookie(c, token, ctl.cookieMaxAge)
	c.JSON(http.StatusCreated, gin.H{"message": "Patient signed up successfully", "patient": patient, "token": token})
}

func (ctl *PatientController) Signin(c *gin.Context) {
	var in SigninInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	patient, token, err := ctl.service.Signin(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}

	setTokenCookie(c, token, ctl.cookieMaxAge)
	c.JSON(http.StatusOK, gin.H{"patient": patient, "token": token, "message": "Sign In successful"})
}

func (ctl *PatientController) GetByID(c *gin.Context) {
	patient, err := ctl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

func (ctl *PatientController) Update(c *gin.Context) {
	var in services.PatientUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	patient, err := ctl.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

func (ctl *PatientController) UpdatePassword(c *gin.Context) {
	var in PasswordUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := ctl.service.UpdatePassword(c.Request.Context(), c.Param("id"), in.OldPassword, in.NewPassword); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("Password updated successfully"))
}

func (ctl *PatientController) Delete(c *gin.Context) {
	if err := ctl.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("Patient deleted successfully"))
}
