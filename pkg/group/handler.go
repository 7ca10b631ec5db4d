package group

import (
	"context"
	"net/http"
	"time"

	"github.com/ritrovo/ritrovo/internal/handler"
	"github.com/ritrovo/ritrovo/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(groupService groupService, barService barService, availabilityService availabilityService) Handler {
	return Handler{
		groupService:        groupService,
		barService:          barService,
		availabilityService: availabilityService,
	}
}

type Handler struct {
	groupService        groupService
	barService          barService
	availabilityService availabilityService
}

type groupService interface {
	FindAll(ctx context.Context) ([]model.Group, error)
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
	Create(ctx context.Context, name string, barNames []string) (*model.Group, error)
}

type barService interface {
	FindByGroup(ctx context.Context, groupID uint) ([]model.Bar, error)
}

type availabilityService interface {
	FindByGroupAndDate(ctx context.Context, groupID uint, date time.Time) ([]model.Availability, error)
}

// List groups
func (h Handler) List(c *gin.Context) {
	// swagger:route GET / listGroups
	//
	// List groups
	//
	// List all groups ordered by name
	//
	// responses:
	//   200:
	groups, err := h.groupService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "groups.html", gin.H{
		"groups": groups,
	})
}

// CreateForm shows the group creation form
func (h Handler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create_group.html", nil)
}

type CreateGroupRequest struct {
	Name string `form:"name" binding:"required"`
	Bar1 string `form:"bar1" binding:"required"`
	Bar2 string `form:"bar2" binding:"required"`
	Bar3 string `form:"bar3" binding:"required"`
}

// Create group
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /crea-gruppo createGroup
	//
	// Create group
	//
	// Create a group with its three bars
	//
	// responses:
	//   303:
	//   400: Error
	//   409: Error
	//   415: Error
	var request CreateGroupRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	group, err := h.groupService.Create(c.Request.Context(), request.Name, []string{request.Bar1, request.Bar2, request.Bar3})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/"+group.Slug)
}

// Page renders the group dashboard: the group's bars and today's
// availabilities, with the submission form pre-filled for a known caller.
func (h Handler) Page(c *gin.Context) {
	// swagger:route GET /{group} groupPage
	//
	// Group dashboard
	//
	// Bars and today's availabilities for a group
	//
	// responses:
	//   200:
	//   404: Error
	ctx := c.Request.Context()

	group, err := h.groupService.FindBySlug(ctx, c.Param("group"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	bars, err := h.barService.FindByGroup(ctx, group.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	today := time.Now()
	availabilities, err := h.availabilityService.FindByGroupAndDate(ctx, group.ID, today)
	if err != nil {
		_ = c.Error(err)
		return
	}

	// the identity is optional here, the page works for anonymous visitors
	identity, _ := handler.GetIdentityFromContext(c)

	c.HTML(http.StatusOK, "group.html", gin.H{
		"group":          group,
		"bars":           bars,
		"availabilities": availabilities,
		"nickname":       identity.Nickname,
		"date":           today.Format("2006-01-02"),
	})
}
