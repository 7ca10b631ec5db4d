package availability

import (
	"context"
	"net/http"

	"github.com/ritrovo/ritrovo/internal/errdef"
	"github.com/ritrovo/ritrovo/internal/handler"
	"github.com/ritrovo/ritrovo/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(availabilityService availabilityService) Handler {
	return Handler{
		availabilityService: availabilityService,
	}
}

type Handler struct {
	availabilityService availabilityService
}

type availabilityService interface {
	Submit(ctx context.Context, groupSlug string, identity model.Identity, barID uint, dateLiteral, startTime, endTime string) (*model.Availability, error)
	Delete(ctx context.Context, identity model.Identity, id uint) error
}

type SubmitRequest struct {
	BarID     uint   `form:"bar_id" binding:"required"`
	Date      string `form:"date" binding:"required,dateliteral"`
	StartTime string `form:"start_time" binding:"required,timeliteral"`
	EndTime   string `form:"end_time" binding:"required,timeliteral"`
}

// Submit availability
func (h Handler) Submit(c *gin.Context) {
	// swagger:route POST /{group}/submit submitAvailability
	//
	// Submit availability
	//
	// Post a time window at one of the group's bars
	//
	// responses:
	//   303:
	//   400: Error
	//   404: Error
	//   415: Error
	var request SubmitRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	identity, err := handler.GetIdentityFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	groupSlug := c.Param("group")
	_, err = h.availabilityService.Submit(c.Request.Context(), groupSlug, identity, request.BarID, request.Date, request.StartTime, request.EndTime)
	if err != nil {
		// the session outlived the user record; ask the caller to sign in again
		if errdef.IsUnauthorized(err) {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/"+groupSlug)
}

type DeleteRequest struct {
	AvailabilityID uint `form:"availability_id" binding:"required"`
}

// Delete availability
func (h Handler) Delete(c *gin.Context) {
	// swagger:route POST /{group}/delete deleteAvailability
	//
	// Delete availability
	//
	// Delete an availability owned by the caller. A missing row or someone
	// else's row is a no-op, not an error.
	//
	// responses:
	//   303:
	//   400: Error
	//   415: Error
	var request DeleteRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	groupSlug := c.Param("group")

	// without a session there is nothing the caller could own
	if identity, err := handler.GetIdentityFromContext(c); err == nil {
		if err := h.availabilityService.Delete(c.Request.Context(), identity, request.AvailabilityID); err != nil {
			_ = c.Error(err)
			return
		}
	}

	if referer := c.Request.Referer(); referer != "" {
		c.Redirect(http.StatusSeeOther, referer)
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+groupSlug)
}
