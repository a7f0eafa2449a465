package home

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"homewatt.xyz/home-energy-service/pkg/common"
	"homewatt.xyz/home-energy-service/pkg/models"
)

func (h *Home) register(input *models.RegisterInput) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryAccount),
	)

	if input.Email == "" || input.Password == "" || input.FirstName == "" ||
		input.LastName == "" || input.SecurityQuestion == "" || input.SecurityAnswer == "" {
		return nil, validationErr("please fill in all required fields")
	}

	var existing models.User
	err := h.Db.Conn.First(&existing, "email = ?", input.Email).Error
	if err == nil {
		return nil, validationErr("email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	answerHash, err := bcrypt.GenerateFromPassword([]byte(input.SecurityAnswer), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Email:              input.Email,
		PasswordHash:       string(passwordHash),
		CountryCode:        input.CountryCode,
		PhoneNumber:        input.PhoneNumber,
		SecurityQuestion:   input.SecurityQuestion,
		SecurityAnswerHash: string(answerHash),
	}

	if err := h.Db.Conn.Create(&user).Error; err != nil {
		return nil, err
	}

	logger.Info("Registered user", zap.Uint("user_id", user.ID), zap.String("email", user.Email))

	return &user, nil
}

func (h *Home) authenticate(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, validationErr("please provide both email and password")
	}

	var user models.User
	err := h.Db.Conn.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// same message as a bad password, the caller cannot probe for emails
		return nil, validationErr("invalid email or password")
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, validationErr("invalid email or password")
	}

	return &user, nil
}

func (h *Home) getUser(userID uint) (*models.User, error) {
	var user models.User
	err := h.Db.Conn.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (h *Home) getUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := h.Db.Conn.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (h *Home) securityQuestion(email string) (string, error) {
	user, err := h.getUserByEmail(email)
	if err != nil {
		return "", err
	}
	return user.SecurityQuestion, nil
}

func (h *Home) verifySecurityAnswer(email, answer string) (string, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryAccount),
	)

	user, err := h.getUserByEmail(email)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.SecurityAnswerHash), []byte(answer)) != nil {
		return "", validationErr("incorrect security answer")
	}

	if h.ResetTokens == nil {
		return "", errors.New("reset token store not available")
	}

	token := h.ResetTokens.Issue(user.Email)

	logger.Info("Issued password reset token", zap.String("email", user.Email))

	return token, nil
}

func (h *Home) resetPassword(token, newPassword string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryAccount),
	)

	if newPassword == "" {
		return validationErr("new password is required")
	}

	if h.ResetTokens == nil {
		return errors.New("reset token store not available")
	}

	email, ok := h.ResetTokens.Consume(token)
	if !ok {
		return validationErr("invalid or expired reset token")
	}

	user, err := h.getUserByEmail(email)
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = h.Db.Conn.Model(user).Update("password_hash", string(passwordHash)).Error
	if err != nil {
		return err
	}

	logger.Info("Password reset", zap.String("email", user.Email))

	return nil
}

type IAccountImpl struct {
	home *Home
}

func (ia *IAccountImpl) Register(input *models.RegisterInput) (*models.User, error) {
	return ia.home.register(input)
}

func (ia *IAccountImpl) Authenticate(email, password string) (*models.User, error) {
	return ia.home.authenticate(email, password)
}

func (ia *IAccountImpl) GetUser(userID uint) (*models.User, error) {
	return ia.home.getUser(userID)
}

func (ia *IAccountImpl) GetUserByEmail(email string) (*models.User, error) {
	return ia.home.getUserByEmail(email)
}

func (ia *IAccountImpl) SecurityQuestion(email string) (string, error) {
	return ia.home.securityQuestion(email)
}

func (ia *IAccountImpl) VerifySecurityAnswer(email, answer string) (string, error) {
	return ia.home.verifySecurityAnswer(email, answer)
}

func (ia *IAccountImpl) ResetPassword(token, newPassword string) error {
	return ia.home.resetPassword(token, newPassword)
}

func (h *Home) GetIAccount() IAccount {
	return &IAccountImpl{home: h}
}
