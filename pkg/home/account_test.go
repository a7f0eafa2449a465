package home

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homewatt.xyz/home-energy-service/pkg/common"
	"homewatt.xyz/home-energy-service/pkg/models"
	_ "homewatt.xyz/home-energy-service/pkg/testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, homeObj, _ := GetMockHomeWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	email := uuid.NewString() + "@example.com"

	user, err := homeObj.Account.Register(&models.RegisterInput{
		Email:            email,
		Password:         "correct-horse",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		SecurityQuestion: "first pet?",
		SecurityAnswer:   "babbage",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	// duplicate email is a validation failure and creates no second row
	_, err = homeObj.Account.Register(&models.RegisterInput{
		Email:            email,
		Password:         "other",
		FirstName:        "Eve",
		LastName:         "Intruder",
		SecurityQuestion: "q",
		SecurityAnswer:   "a",
	})
	assert.ErrorIs(t, err, ErrValidation)

	var count int64
	err = homeObj.Db.Conn.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// the original row still authenticates
	authed, err := homeObj.Account.Authenticate(email, "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = homeObj.Account.Authenticate(email, "wrong-password")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = homeObj.Account.Authenticate(uuid.NewString()+"@nowhere.com", "correct-horse")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterMissingFields(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, homeObj, _ := GetMockHomeWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	_, err := homeObj.Account.Register(&models.RegisterInput{
		Email:    uuid.NewString() + "@example.com",
		Password: "p",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPasswordResetFlow(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, homeObj, _ := GetMockHomeWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	email := uuid.NewString() + "@example.com"

	_, err := homeObj.Account.Register(&models.RegisterInput{
		Email:            email,
		Password:         "old-password",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		SecurityQuestion: "first pet?",
		SecurityAnswer:   "babbage",
	})
	require.NoError(t, err)

	question, err := homeObj.Account.SecurityQuestion(email)
	require.NoError(t, err)
	assert.Equal(t, "first pet?", question)

	// wrong answer is rejected, no token issued
	_, err = homeObj.Account.VerifySecurityAnswer(email, "lovelace")
	assert.ErrorIs(t, err, ErrValidation)

	token, err := homeObj.Account.VerifySecurityAnswer(email, "babbage")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	err = homeObj.Account.ResetPassword(token, "new-password")
	require.NoError(t, err)

	// new password works, the old one no longer does
	_, err = homeObj.Account.Authenticate(email, "new-password")
	assert.NoError(t, err)

	_, err = homeObj.Account.Authenticate(email, "old-password")
	assert.ErrorIs(t, err, ErrValidation)

	// tokens are one-time
	err = homeObj.Account.ResetPassword(token, "another-password")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSecurityQuestionUnknownEmail(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, homeObj, _ := GetMockHomeWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	_, err := homeObj.Account.SecurityQuestion(uuid.NewString() + "@nowhere.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
