package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -----------------------------
// Helper functions
// -----------------------------

func jsonError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}

// getUserIDFromContext expects AuthMiddleware to set "user_id" (uint) in context.
// If not present -> unauthorized.
func getUserIDFromContext(c *gin.Context) (uint, bool) {
	uid, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := uid.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		_ = v
		return 0, false
	}
}

// -----------------------------
// Events
// -----------------------------

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"` // stored exactly as submitted
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	Description string `json:"description"`
	EventType   string `json:"eventType"`
}

func (app *App) CreateEvent(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body CreateEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	ev := Event{
		OrganizerID: userID,
		Title:       strings.TrimSpace(body.Title),
		Date:        body.Date,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		Location:    body.Location,
		Description: body.Description,
		EventType:   body.EventType,
	}

	if err := app.DB.Create(&ev).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not create event: "+err.Error())
		return
	}

	app.invalidateUpcoming(c.Request.Context())

	c.JSON(http.StatusCreated, ev)
}

const defaultUpcomingLimit = 10

// GetUpcomingEvents lists all events ascending by date, truncated to the
// limit. There is no relevance window: a past event sorts first and still
// counts against the limit.
func (app *App) GetUpcomingEvents(c *gin.Context) {
	limit := defaultUpcomingLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			jsonError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	if events, ok := app.cachedUpcoming(c.Request.Context(), limit); ok {
		c.JSON(http.StatusOK, events)
		return
	}

	var events []Event
	if err := app.DB.Order("date asc, id asc").Limit(limit).Find(&events).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	app.storeUpcoming(c.Request.Context(), limit, events)

	c.JSON(http.StatusOK, events)
}

func (app *App) GetEventDetails(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid event id")
		return
	}

	var ev Event
	if err := app.DB.First(&ev, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			jsonError(c, http.StatusNotFound, "event not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	organizerName := "Unknown"
	var organizer User
	if err := app.DB.First(&organizer, ev.OrganizerID).Error; err == nil {
		organizerName = organizer.FullName
	}

	c.JSON(http.StatusOK, gin.H{
		"event":         ev,
		"organizerName": organizerName,
	})
}

func (app *App) DeleteEvent(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid event id")
		return
	}

	var ev Event
	if err := app.DB.First(&ev, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			jsonError(c, http.StatusNotFound, "event not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	// Only organizer can delete, enforced here rather than hidden in the UI
	if ev.OrganizerID != userID {
		jsonError(c, http.StatusForbidden, "only organizer can delete the event")
		return
	}

	if err := app.DB.Delete(&Event{}, ev.ID).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "delete failed: "+err.Error())
		return
	}

	app.invalidateUpcoming(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

// -----------------------------
// Profile
// -----------------------------

// UpdateProfileRequest uses pointers so absent fields keep their prior
// values: a partial merge, not a replace.
type UpdateProfileRequest struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Parish   *string `json:"parish"`
	Role     *string `json:"role"`
	Bio      *string `json:"bio"`
}

func (app *App) UpdateProfile(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body UpdateProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	var user User
	if err := app.DB.First(&user, userID).Error; err != nil {
		jsonError(c, http.StatusNotFound, "user not found")
		return
	}

	if body.FullName != nil {
		user.FullName = *body.FullName
	}
	if body.Phone != nil {
		user.Phone = *body.Phone
	}
	if body.Parish != nil {
		user.Parish = *body.Parish
	}
	if body.Role != nil {
		user.Role = *body.Role
	}
	if body.Bio != nil {
		user.Bio = *body.Bio
	}

	if err := app.DB.Save(&user).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not update profile: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully!",
		"user":    user.PublicProfile(),
	})
}

// -----------------------------
// User directory
// -----------------------------

// ListUsers returns every registered user with passwords stripped, so a
// client can pick a chat partner or show organizer names.
func (app *App) ListUsers(c *gin.Context) {
	var users []User
	if err := app.DB.Order("id asc").Find(&users).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	for i := range users {
		users[i].Password = ""
	}

	c.JSON(http.StatusOK, users)
}
