package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/bholemart/app/services"
	"github.com/shashiranjanraj/bholemart/pkg/bind"
	"github.com/shashiranjanraj/bholemart/pkg/logger"
	"github.com/shashiranjanraj/bholemart/pkg/response"
	"github.com/shashiranjanraj/bholemart/pkg/session"
	"github.com/shashiranjanraj/bholemart/pkg/validate"
)

// AuthController serves login, signup, and logout.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

type signupInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ShowLogin renders the login page payload.
func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	flashes := sess.TakeFlashes()
	_ = sess.Save(w)
	response.Success(w, map[string]interface{}{"page": "login", "flashes": flashes})
}

// Login authenticates a form submission and establishes the session.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)

	form, err := bind.Form(r, "email", "password")
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	identity, err := c.service.Authenticate(form["email"], form["password"])
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sess.Flash(session.FlashDanger, "Invalid email or password")
			_ = sess.Save(w)
			response.Redirect(w, r, "/login")
			return
		}
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	sess.Login(identity)
	sess.Flash(session.FlashSuccess, "Logged in successfully!")
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Error("session save failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Redirect(w, r, "/")
}

// ShowSignup renders the signup page payload.
func (c *AuthController) ShowSignup(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	flashes := sess.TakeFlashes()
	_ = sess.Save(w)
	response.Success(w, map[string]interface{}{"page": "signup", "flashes": flashes})
}

// Signup registers a new account from a form submission.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)

	form, err := bind.Form(r, "name", "email", "password")
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	input := signupInput{Name: form["name"], Email: form["email"], Password: form["password"]}
	if errs := validate.Struct(&input); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	if _, err := c.service.Register(input.Name, input.Email, input.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			sess.Flash(session.FlashDanger, "Email already exists")
			_ = sess.Save(w)
			response.Redirect(w, r, "/signup")
			return
		}
		logger.WithCtx(r.Context()).Error("signup failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	sess.Flash(session.FlashSuccess, "Account created! Please login.")
	_ = sess.Save(w)
	response.Redirect(w, r, "/login")
}

// Logout clears the session and sends the visitor home.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.Logout()
	sess.Flash(session.FlashInfo, "Logged out successfully.")
	_ = sess.Save(w)
	response.Redirect(w, r, "/")
}
