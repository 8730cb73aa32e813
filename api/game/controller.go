package gameapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/retro-maze/maze-api/api/identity"
	"github.com/retro-maze/maze-api/game"
	"github.com/retro-maze/maze-api/service/i"
)

const defaultLeaderboardSize = 10

// SessionController manages adaptive maze session endpoints.
type SessionController struct {
	sessionManager i.GameSessionManager
	leaderboard    i.Leaderboard
}

// NewSessionController initializes a SessionController.
func NewSessionController(sm i.GameSessionManager, lb i.Leaderboard) (*SessionController, error) {
	return &SessionController{
		sessionManager: sm,
		leaderboard:    lb,
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SessionController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", sc.topPlayers)
}

// RegisterProtected registers protected routes.
func (sc *SessionController) RegisterProtected(route *gin.RouterGroup) {
	sessions := route.Group("/sessions")
	{
		sessions.POST("/", sc.startSession)
		sessions.GET("/maze", sc.nextMaze)
		sessions.POST("/performance", sc.reportPerformance)
		sessions.GET("/stats", sc.stats)
		sessions.POST("/stats/save", sc.saveStats)
	}
}

// playerIDFromClaims extracts the authenticated player's ID from the JWT
// claims the middleware attached.
func playerIDFromClaims(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		return uuid.Nil, false
	}

	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, false
	}

	idString, ok := claims["playerID"].(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idString)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// startSession creates or resumes the player's adaptive session.
func (sc *SessionController) startSession(ctx *gin.Context) {
	playerID, ok := playerIDFromClaims(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	stats, err := sc.sessionManager.StartSession(playerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newStatsResponse(stats))
}

// nextMaze generates and returns the maze for the player's current level.
func (sc *SessionController) nextMaze(ctx *gin.Context) {
	playerID, ok := playerIDFromClaims(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	level, params, shapeChanged, err := sc.sessionManager.NextMaze(playerID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(level, params, shapeChanged))
}

// reportPerformance records a completed maze and advances the difficulty
// loop. The body is taken as-is: completion_time is the only interpreted
// field, everything else rides along into the history.
func (sc *SessionController) reportPerformance(ctx *gin.Context) {
	playerID, ok := playerIDFromClaims(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var record game.PerformanceRecord
	if err := ctx.ShouldBindJSON(&record); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	stats, err := sc.sessionManager.ReportPerformance(timeoutCtx, playerID, record)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newStatsResponse(stats))
}

// stats returns the player's current stats snapshot.
func (sc *SessionController) stats(ctx *gin.Context) {
	playerID, ok := playerIDFromClaims(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	stats, err := sc.sessionManager.Stats(playerID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newStatsResponse(stats))
}

// saveStats writes the player's stats snapshot to a named file.
func (sc *SessionController) saveStats(ctx *gin.Context) {
	playerID, ok := playerIDFromClaims(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request SaveStatsRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.sessionManager.SaveStats(playerID, request.Filename); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// topPlayers returns the fastest players.
func (sc *SessionController) topPlayers(ctx *gin.Context) {
	n := int64(defaultLeaderboardSize)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		n = parsed
	}

	timeoutCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	entries, err := sc.leaderboard.Top(timeoutCtx, n)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching leaderboard"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"entries": entries})
}
