package controller

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/aurify/priceboard/database"
	"github.com/aurify/priceboard/web/entity"
	"github.com/aurify/priceboard/web/middleware"
	"github.com/aurify/priceboard/web/service"

	"github.com/gin-gonic/gin"
)

var emailRegexp = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// registerForm is the registration request payload.
type registerForm struct {
	CompanyName     string `json:"companyName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// loginForm is the login request payload.
type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthController handles registration, login and the current-identity
// lookup.
type AuthController struct {
	authService *service.AuthService
	userService service.UserService
}

// NewAuthController creates a new AuthController and initializes its routes.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{
		authService: service.NewAuthService(),
	}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/auth")

	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.GET("/me", middleware.JWTAuth(a.authService), a.me)
}

// AuthService exposes the token service so the router can gate other
// resource groups with the same verifier.
func (a *AuthController) AuthService() *service.AuthService {
	return a.authService
}

// register validates the payload, creates the account and issues a token.
// Validation checks every field and aggregates the failures into one
// response.
func (a *AuthController) register(c *gin.Context) {
	form := &registerForm{}
	_ = c.ShouldBindJSON(form)

	errs := make(map[string]string)
	if strings.TrimSpace(form.CompanyName) == "" {
		errs["companyName"] = "Company name is required"
	}
	if strings.TrimSpace(form.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRegexp.MatchString(form.Email) {
		errs["email"] = "Invalid email format"
	}
	if strings.TrimSpace(form.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	if form.Password == "" {
		errs["password"] = "Password is required"
	} else if len(form.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	}
	if form.ConfirmPassword == "" {
		errs["confirmPassword"] = "Please confirm your password"
	} else if form.Password != form.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	if len(errs) > 0 {
		jsonErrors(c, http.StatusUnprocessableEntity, errs)
		return
	}

	user, err := a.authService.Register(form.CompanyName, form.Email, form.Phone, form.Password)
	if errors.Is(err, service.ErrEmailTaken) {
		jsonErrors(c, http.StatusConflict, map[string]string{
			"email": "An account with this email already exists",
		})
		return
	} else if err != nil {
		jsonInternal(c, "Failed to create account", err)
		return
	}

	token, err := a.authService.IssueToken(user)
	if err != nil {
		jsonInternal(c, "Failed to create account", err)
		return
	}

	c.JSON(http.StatusCreated, entity.Msg{
		Success: true,
		Message: "Account created successfully",
		Token:   token,
		User:    entity.SanitizeUser(user),
	})
}

// login validates credentials and issues a token. Unknown email and wrong
// password share one message so accounts cannot be enumerated; a suspended
// account gets a distinct 403.
func (a *AuthController) login(c *gin.Context) {
	form := &loginForm{}
	_ = c.ShouldBindJSON(form)

	errs := make(map[string]string)
	if strings.TrimSpace(form.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRegexp.MatchString(form.Email) {
		errs["email"] = "Invalid email format"
	}
	if form.Password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) > 0 {
		jsonErrors(c, http.StatusUnprocessableEntity, errs)
		return
	}

	user, err := a.authService.Login(form.Email, form.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		jsonMsg(c, http.StatusUnauthorized, "Invalid email or password")
		return
	} else if errors.Is(err, service.ErrAccountSuspended) {
		jsonMsg(c, http.StatusForbidden, "Your account has been suspended. Please contact support.")
		return
	} else if err != nil {
		jsonInternal(c, "Failed to log in", err)
		return
	}

	token, err := a.authService.IssueToken(user)
	if err != nil {
		jsonInternal(c, "Failed to log in", err)
		return
	}

	c.JSON(http.StatusOK, entity.Msg{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    entity.SanitizeUser(user),
	})
}

// me returns the account behind the attached claims. The account may have
// been removed after the token was issued.
func (a *AuthController) me(c *gin.Context) {
	claims := middleware.GetClaims(c)

	user, err := a.userService.GetUser(claims.Id)
	if database.IsNotFound(err) {
		jsonMsg(c, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		jsonInternal(c, "Failed to fetch account", err)
		return
	}

	c.JSON(http.StatusOK, entity.Msg{
		Success: true,
		User:    entity.SanitizeUser(user),
	})
}
