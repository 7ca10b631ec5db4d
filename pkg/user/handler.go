package user

import (
	"context"
	"net/http"

	"github.com/ritrovo/ritrovo/internal/handler"
	"github.com/ritrovo/ritrovo/internal/util"
	"github.com/ritrovo/ritrovo/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(hostname string, userService userService, sessionService sessionService) Handler {
	return Handler{
		hostname:       hostname,
		userService:    userService,
		sessionService: sessionService,
	}
}

type Handler struct {
	hostname       string
	userService    userService
	sessionService sessionService
}

type userService interface {
	SignUp(ctx context.Context, groupSlug string, nickname string, password string) (*model.User, error)
	SignIn(ctx context.Context, groupSlug string, nickname string, password string) (*model.User, error)
}

type sessionService interface {
	Sign(identity model.Identity) (string, error)
	MaxAge() int
}

// RegisterForm shows the registration form
func (h Handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

type RegisterRequest struct {
	Nickname string `form:"nickname" binding:"required,lte=64"`
	Password string `form:"password" binding:"required,gte=8,lte=128"`
	Group    string `form:"group" binding:"required"`
}

// Register user
func (h Handler) Register(c *gin.Context) {
	// swagger:route POST /register register
	//
	// Register
	//
	// Register a nickname in a group and sign in
	//
	// responses:
	//   303:
	//   400: Error
	//   404: Error
	//   409: Error
	//   415: Error
	var request RegisterRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.SignUp(c.Request.Context(), request.Group, request.Nickname, request.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.startSession(c, user, request.Group)
}

// LoginForm shows the login form
func (h Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

type LoginRequest struct {
	Nickname string `form:"nickname" binding:"required"`
	Password string `form:"password" binding:"required"`
	Group    string `form:"group" binding:"required"`
}

// Login user
func (h Handler) Login(c *gin.Context) {
	// swagger:route POST /login login
	//
	// Login
	//
	// Sign in with nickname and password
	//
	// responses:
	//   303:
	//   400: Error
	//   401: Error
	//   404: Error
	//   415: Error
	var request LoginRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.SignIn(c.Request.Context(), request.Group, request.Nickname, request.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.startSession(c, user, request.Group)
}

// Logout clears the session cookie. Always succeeds.
func (h Handler) Logout(c *gin.Context) {
	// swagger:route GET /logout logout
	//
	// Logout
	//
	// Clear the session cookie
	//
	// responses:
	//   303:
	util.ClearSessionCookie(c, h.hostname)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h Handler) startSession(c *gin.Context, user *model.User, groupSlug string) {
	identity := model.Identity{
		UserID:    user.ID,
		Nickname:  user.Nickname,
		GroupSlug: groupSlug,
	}

	token, err := h.sessionService.Sign(identity)
	if err != nil {
		_ = c.Error(err)
		return
	}

	util.SetSessionCookie(c, token, h.sessionService.MaxAge(), h.hostname)
	c.Redirect(http.StatusSeeOther, "/"+groupSlug)
}
