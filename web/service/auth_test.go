package service

import (
	"os"
	"testing"

	"github.com/aurify/priceboard/database"
	"github.com/aurify/priceboard/database/model"

	"github.com/stretchr/testify/assert"
)

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	setup()
	defer teardown()

	authService := NewAuthService()

	user, err := authService.Register("Acme Metals", "Admin@Acme.com", "+971500000000", "secret-pass")
	assert.NoError(t, err)
	assert.Equal(t, "admin@acme.com", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, model.StatusActive, user.Status)
	assert.NotEmpty(t, user.Id)
	assert.NotEqual(t, "secret-pass", user.PasswordHash)

	// Same email collides regardless of case or other fields.
	_, err = authService.Register("Other Co", "admin@acme.com", "+971511111111", "other-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = authService.Register("Other Co", "ADMIN@ACME.COM", "+971511111111", "other-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	setup()
	defer teardown()

	authService := NewAuthService()

	_, err := authService.Register("Acme Metals", "admin@acme.com", "+971500000000", "secret-pass")
	assert.NoError(t, err)

	user, err := authService.Login("admin@acme.com", "secret-pass")
	assert.NoError(t, err)
	assert.Equal(t, "admin@acme.com", user.Email)

	// Case-insensitive email lookup.
	_, err = authService.Login("Admin@Acme.com", "secret-pass")
	assert.NoError(t, err)

	// Unknown email and wrong password are indistinguishable.
	_, err = authService.Login("nobody@acme.com", "secret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authService.Login("admin@acme.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuspendedAccount(t *testing.T) {
	setup()
	defer teardown()

	authService := NewAuthService()

	user, err := authService.Register("Acme Metals", "admin@acme.com", "+971500000000", "secret-pass")
	assert.NoError(t, err)

	err = database.GetDB().Model(model.User{}).
		Where("id = ?", user.Id).
		Update("status", model.StatusSuspended).
		Error
	assert.NoError(t, err)

	// Correct credentials still yield the suspension error, not the
	// credentials one.
	_, err = authService.Login("admin@acme.com", "secret-pass")
	assert.ErrorIs(t, err, ErrAccountSuspended)
}

func TestTokenRoundTrip(t *testing.T) {
	setup()
	defer teardown()

	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	authService := NewAuthService()

	user, err := authService.Register("Acme Metals", "admin@acme.com", "+971500000000", "secret-pass")
	assert.NoError(t, err)

	token, err := authService.IssueToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.Id, claims.Id)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, user.CompanyName, claims.CompanyName)

	_, err = authService.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = authService.VerifyToken(token + "tampered")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// A token signed under a different secret fails verification.
	os.Setenv("JWT_SECRET", "other-secret")
	otherService := NewAuthService()
	_, err = otherService.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPassword(t *testing.T) {
	setup()
	defer teardown()

	authService := NewAuthService()
	userService := UserService{}

	_, err := authService.Register("Acme Metals", "admin@acme.com", "+971500000000", "secret-pass")
	assert.NoError(t, err)

	err = userService.ResetPassword("Admin@Acme.com", "new-password")
	assert.NoError(t, err)

	_, err = authService.Login("admin@acme.com", "secret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authService.Login("admin@acme.com", "new-password")
	assert.NoError(t, err)

	err = userService.ResetPassword("nobody@acme.com", "new-password")
	assert.Error(t, err)
}
