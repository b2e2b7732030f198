package handlers

import (
	"errors"
	"net/http"

	"Loyalty/internal/auth"
	"Loyalty/internal/dto"
	"Loyalty/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	sessions     auth.Sessions
	userSvc      *service.UserService
	cookieMaxAge int
	cookieSecure bool
}

// NewAuthHandler returns a new AuthHandler. cookieMaxAge is in seconds and
// should match the session TTL; cookieSecure should be true in prod.
func NewAuthHandler(sessions auth.Sessions, userSvc *service.UserService, cookieMaxAge int, cookieSecure bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, userSvc: userSvc, cookieMaxAge: cookieMaxAge, cookieSecure: cookieSecure}
}

// Signup godoc
// @Summary      Sign up
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username         formData  string  true  "Email"
// @Param        password         formData  string  true  "Password, min 8 chars"
// @Param        password-repeat  formData  string  true  "Password confirmation"
// @Success      303
// @Router       /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		setFlash(c, "Invalid form")
		c.Redirect(http.StatusSeeOther, "/signup")
		return
	}
	if msg := validateSignup(req.Username, req.Password, req.PasswordRepeat); msg != "" {
		setFlash(c, msg)
		c.Redirect(http.StatusSeeOther, "/signup")
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			setFlash(c, "Email taken")
			c.Redirect(http.StatusSeeOther, "/signup")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	if !h.establishSession(c, user.ID) {
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      303
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		setFlash(c, "Invalid form")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	if msg := validateLogin(req.Username, req.Password); msg != "" {
		setFlash(c, msg)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			setFlash(c, "User does not exist")
		case errors.Is(err, service.ErrWrongPassword):
			setFlash(c, "Wrong password")
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	if !h.establishSession(c, user.ID) {
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Success      303
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err == nil && sessionID != "" {
		if err := h.sessions.Delete(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
			return
		}
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// establishSession creates a session and sets the cookie. On failure it
// writes a 500 and returns false.
func (h *AuthHandler) establishSession(c *gin.Context, userID int64) bool {
	sessionID, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return false
	}
	c.SetCookie(auth.SessionCookieName, sessionID, h.cookieMaxAge, "/", "", h.cookieSecure, true)
	return true
}
