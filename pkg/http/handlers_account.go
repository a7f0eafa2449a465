package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"homewatt.xyz/home-energy-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type RegisterRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	CountryCode      string `json:"country_code"`
	PhoneNumber      string `json:"phone_number"`
	SecurityQuestion string `json:"security_question"`
	SecurityAnswer   string `json:"security_answer"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Email":            z.String().Required(),
	"Password":         z.String().Required(),
	"FirstName":        z.String().Required(),
	"LastName":         z.String().Required(),
	"CountryCode":      z.String(),
	"PhoneNumber":      z.String(),
	"SecurityQuestion": z.String().Required(),
	"SecurityAnswer":   z.String().Required(),
})

func (rs *RestfulServer) Register(c *gin.Context) {
	if !rs.CheckLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "please fill in all required fields"})
		return
	}

	user, err := rs.Home.Account.Register(&models.RegisterInput{
		Email:            req.Email,
		Password:         req.Password,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		CountryCode:      req.CountryCode,
		PhoneNumber:      req.PhoneNumber,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
	})
	if err != nil {
		respondResult(c, err, "")
		return
	}

	// registration logs the new user in right away
	token, err := rs.Auth.Issue(user.ID)
	if err != nil {
		respondResult(c, err, "")
		return
	}
	rs.setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "registration successful",
		"user_id": user.ID,
	})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Required(),
	"Password": z.String().Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	if !rs.CheckLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "please provide both email and password"})
		return
	}

	user, err := rs.Home.Account.Authenticate(req.Email, req.Password)
	if err != nil {
		respondResult(c, err, "")
		return
	}

	token, err := rs.Auth.Issue(user.ID)
	if err != nil {
		respondResult(c, err, "")
		return
	}
	rs.setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "login successful",
		"user_id": user.ID,
	})
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	rs.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

var forgotPasswordRequestSchema = z.Struct(z.Shape{
	"Email": z.String().Required(),
})

// ForgotPassword is step one of the recovery flow: it confirms the email
// and returns the security question for the verify step.
func (rs *RestfulServer) ForgotPassword(c *gin.Context) {
	if !rs.CheckLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ForgotPasswordRequest
	if err := forgotPasswordRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email is required"})
		return
	}

	question, err := rs.Home.Account.SecurityQuestion(req.Email)
	if err != nil {
		respondResult(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           "email found",
		"security_question": question,
	})
}

type VerifySecurityRequest struct {
	Email          string `json:"email"`
	SecurityAnswer string `json:"security_answer"`
}

var verifySecurityRequestSchema = z.Struct(z.Shape{
	"Email":          z.String().Required(),
	"SecurityAnswer": z.String().Required(),
})

func (rs *RestfulServer) VerifySecurity(c *gin.Context) {
	if !rs.CheckLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req VerifySecurityRequest
	if err := verifySecurityRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email and security answer are required"})
		return
	}

	token, err := rs.Home.Account.VerifySecurityAnswer(req.Email, req.SecurityAnswer)
	if err != nil {
		respondResult(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "security answer verified",
		"reset_token": token,
	})
}

type ResetPasswordRequest struct {
	ResetToken      string `json:"reset_token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

var resetPasswordRequestSchema = z.Struct(z.Shape{
	"ResetToken":      z.String().Required(),
	"NewPassword":     z.String().Required(),
	"ConfirmPassword": z.String().Required(),
})

func (rs *RestfulServer) ResetPassword(c *gin.Context) {
	if !rs.CheckLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ResetPasswordRequest
	if err := resetPasswordRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "reset token and new password are required"})
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "passwords do not match"})
		return
	}

	err := rs.Home.Account.ResetPassword(req.ResetToken, req.NewPassword)
	respondResult(c, err, "password reset successful")
}
