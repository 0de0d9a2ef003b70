package controllers

import (
	"net/http"
	"time"

	"MediLink360/services"
	"MediLink360/util"

	"github.com/gin-gonic/gin"
)

type DoctorController struct {
	service      *services.DoctorService
	files        *services.FileService
	cookieMaxAge time.Duration
}

func NewDoctorController(service *services.DoctorService, files *services.FileService, cookieMaxAge time.Duration) *DoctorController {
	return &DoctorController{service: service, files: files, cookieMaxAge: cookieMaxAge}
}

func (ctl *DoctorController) Register(public, protected *gin.RouterGroup) {
	public.POST("/doctor/signup", ctl.Signup)
	public.POST("/doctor/signin", ctl.Signin)
	protected.GET("/doctor/:id", ctl.GetByID)
	protected.PUT("/doctor/:id", ctl.Update)
	protected.PUT("/doctor/password/:id", ctl.UpdatePassword)
	protected.DELETE("/doctor/:id", ctl.Delete)
	protected.GET("/doctors", ctl.GetAll)
}

/*
* Bind the multipart form fields
* Store the profile picture when one is attached
* Pass to the service, then set the token cookie
 */
func (ctl *DoctorController) Signup(c *gin.Context) {
	var in services.DoctorSignupInput
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

	doctor, token, err := ctl.service.Signup(c.Request.Context(), in, profilePicture)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}

	setTokenCookie(c, token, ctl.cookieMaxAge)
	c.JSON(http.StatusCreated, gin.H{"message": "Doctor signed up successfully", "doctor": doctor, "token": token})
}

func (ctl *DoctorController) Signin(c *gin.Context) {
	var in SigninInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	doctor, token, err := ctl.service.Signin(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}

	setTokenCookie(c, token, ctl.cookieMaxAge)
	c.JSON(http.StatusOK, gin.H{"doctor": doctor, "token": token, "message": "Sign In successful"})
}

func (ctl *DoctorController) GetByID(c *gin.Context) {
	doctor, err := ctl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

func (ctl *DoctorController) Update(c *gin.Context) {
	var in services.DoctorUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	doctor, err := ctl.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

func (ctl *DoctorController) UpdatePassword(c *gin.Context) {
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

func (ctl *DoctorController) Delete(c *gin.Context) {
	if err := ctl.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("Doctor deleted successfully"))
}

func (ctl *DoctorController) GetAll(c *gin.Context) {
	doctors, err := ctl.service.List(c.Request.Context())
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}
