package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ghada1234/nutritrack/config"
	"github.com/ghada1234/nutritrack/services"
	"github.com/ghada1234/nutritrack/utils"

	"github.com/gin-gonic/gin"
)

var hub *services.RealtimeHub

// InitRealtime wires the websocket hub so ledger mutations can push the
// recomputed summary. Safe to leave nil in tests.
func InitRealtime(h *services.RealtimeHub) {
	hub = h
}

func ledger() *services.LedgerService {
	return services.NewLedgerService(config.DB)
}

// pushSummary recomputes and broadcasts after every mutation so no client
// ever renders stale totals.
func pushSummary(sessionID string) {
	if hub == nil {
		return
	}
	sum, err := ledger().Summary(sessionID)
	if err != nil {
		return
	}
	hub.BroadcastSummary(sessionID, sum)
}

func entryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return 0, false
	}
	return uint(id), true
}

func bindRawFields(c *gin.Context) (map[string]string, bool) {
	var raw map[string]string
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return nil, false
	}
	return raw, true
}

// GET /log — both entry lists, the ledger as the client should render it.
func ListLog(c *gin.Context) {
	sid := c.GetString("sessionID")
	foods, err := ledger().ListFood(sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	exercises, err := ledger().ListExercise(sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"food": foods, "exercise": exercises})
}

// ---- food ----

// POST /log/food — raw form fields, validated before anything else runs.
func AddFood(c *gin.Context) {
	raw, ok := bindRawFields(c)
	if !ok {
		return
	}
	in, errs := utils.ValidateFoodLog(raw)
	if !errs.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}
	sid := c.GetString("sessionID")
	entry, err := ledger().AddFood(sid, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pushSummary(sid)
	c.JSON(http.StatusCreated, entry)
}

// PUT /log/food/:id
func UpdateFood(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	raw, ok := bindRawFields(c)
	if !ok {
		return
	}
	in, errs := utils.ValidateFoodLog(raw)
	if !errs.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}
	sid := c.GetString("sessionID")
	entry, err := ledger().UpdateFood(sid, id, in)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pushSummary(sid)
	c.JSON(http.StatusOK, entry)
}

// DELETE /log/food/:id
func DeleteFood(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	sid := c.GetString("sessionID")
	err := ledger().DeleteFood(sid, id)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pushSummary(sid)
	c.Status(http.StatusNoContent)
}

// POST /log/food/:id/duplicate — "log again"
func DuplicateFood(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	sid := c.GetString("sessionID")
	entry, err := ledger().DuplicateFood(sid, id)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pushSummary(sid)
	c.JSON(http.StatusCreated, entry)
}

// ---- exercise ----

// POST /log/exercise
func AddExercise(c *gin.Context) {
	raw, ok := bindRawFields(c)
	if !ok {
		return
	}
	in, errs := utils.ValidateExerciseLog(raw)
	if !errs.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}
	sid := c.GetString("sessionID")
	entry, err := ledger().AddExercise(sid, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pushSummary(sid)
	c.JSON(http.StatusCreated, entry)
}

// PUT /log/exercise/:id
func UpdateExercise(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	raw, ok := bindRawFields(c)
	if !ok {
		return
	}
	in, errs := utils.ValidateExerciseLog(raw)
	if !errs.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}
	sid := c.GetString("sessionID")
	entry, err := ledger().UpdateExercise(sid, id, in)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pushSummary(sid)
	c.JSON(http.StatusOK, entry)
}

// DELETE /log/exercise/:id
func DeleteExercise(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	sid := c.GetString("sessionID")
	err := ledger().DeleteExercise(sid, id)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pushSummary(sid)
	c.Status(http.StatusNoContent)
}

// POST /log/exercise/:id/duplicate
func DuplicateExercise(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	sid := c.GetString("sessionID")
	entry, err := ledger().DuplicateExercise(sid, id)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pushSummary(sid)
	c.JSON(http.StatusCreated, entry)
}

// ---- summary & goals ----

// GET /summary
func GetSummary(c *gin.Context) {
	sum, err := ledger().Summary(c.GetString("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

// PUT /goals
func SetGoals(c *gin.Context) {
	raw, ok := bindRawFields(c)
	if !ok {
		return
	}
	in, errs := utils.ValidateGoals(raw)
	if !errs.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}
	sid := c.GetString("sessionID")
	goal, err := ledger().UpsertGoals(sid, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pushSummary(sid)
	c.JSON(http.StatusOK, goal)
}
