package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// threadKey derives the shared identifier for a two-party chat: both ids
// as decimal strings, sorted lexicographically, joined with "-". The key
// is identical whichever side derives it, so one thread exists per
// unordered pair.
func threadKey(a, b uint) string {
	x := strconv.FormatUint(uint64(a), 10)
	y := strconv.FormatUint(uint64(b), 10)
	if x > y {
		x, y = y, x
	}
	return x + "-" + y
}

func (app *App) chatPartner(c *gin.Context) (User, bool) {
	var partner User
	id, err := strconv.ParseUint(c.Param("userID"), 10, 64)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid user id")
		return partner, false
	}
	if err := app.DB.First(&partner, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			jsonError(c, http.StatusNotFound, "chat partner not found")
			return partner, false
		}
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return partner, false
	}
	return partner, true
}

// GetChatMessages returns the full ordered thread between the caller and
// :userID. Both participants read the same sequence.
func (app *App) GetChatMessages(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	partner, ok := app.chatPartner(c)
	if !ok {
		return
	}

	var messages []ChatMessage
	if err := app.DB.Where("thread_key = ?", threadKey(userID, partner.ID)).
		Order("id asc").Find(&messages).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"partner":  partner.PublicProfile(),
		"messages": messages,
	})
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

// SendChatMessage appends to the pair's thread. The sender's display
// name is snapshotted onto the message at send time.
func (app *App) SendChatMessage(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	partner, ok := app.chatPartner(c)
	if !ok {
		return
	}

	var body SendMessageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	text := strings.TrimSpace(body.Text)
	if text == "" {
		jsonError(c, http.StatusBadRequest, "message text required")
		return
	}

	var sender User
	if err := app.DB.First(&sender, userID).Error; err != nil {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	msg := ChatMessage{
		ThreadKey:  threadKey(userID, partner.ID),
		SenderID:   userID,
		SenderName: sender.FullName,
		Text:       text,
	}

	if err := app.DB.Create(&msg).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not send message: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, msg)
}
