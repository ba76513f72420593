// Package httpapi is a thin gin layer exposing puzzle generation over
// HTTP: generate, validate, and a lightweight session token for
// resuming a generation's parameters.
package httpapi

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chaLords/sudokugen"
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/difficulty"
	"github.com/chaLords/sudokugen/pkg/config"
	"github.com/chaLords/sudokugen/pkg/constants"
)

var cfg *config.Config

var errUnsupportedGridSize = errors.New("grid size does not correspond to a supported subgrid order")

// RegisterRoutes wires every handler onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/generate", generateHandler)
		api.POST("/validate", validateHandler)
		api.POST("/session/start", sessionStartHandler)
		api.GET("/session/:token", sessionVerifyHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

type generateRequest struct {
	K          int    `json:"k"`
	Difficulty string `json:"difficulty"`
}

type generateResponse struct {
	Grid       [][]int `json:"grid"`
	Clues      int     `json:"clues"`
	Difficulty string  `json:"difficulty"`
	Token      string  `json:"token"`
}

func generateHandler(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.K == 0 {
		req.K = cfg.DefaultK
	}
	if req.K < board.MinK || req.K > board.MaxK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "k out of supported range"})
		return
	}

	b, err := sudokugen.NewBoard(req.K)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	diff, ok := parseDifficulty(req.Difficulty)
	if req.Difficulty != "" && !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty"})
		return
	}

	seed := time.Now().UnixNano()
	var genOK bool
	if req.Difficulty == "" {
		genOK, err = sudokugen.Generate(b, nil, nil)
	} else {
		genOK, err = sudokugen.GenerateWithDifficulty(b, diff, nil, nil)
	}
	if err != nil {
		log.Printf("generate failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation error"})
		return
	}
	if !genOK {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not generate a puzzle within resource limits"})
		return
	}

	actual, err := sudokugen.EvaluateDifficulty(b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := createToken(cfg.JWTSecret, newSession(req.K, actual, seed))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue session token"})
		return
	}

	c.JSON(http.StatusOK, generateResponse{
		Grid:       gridOf(b),
		Clues:      b.Clues(),
		Difficulty: sudokugen.DifficultyToString(actual),
		Token:      token,
	})
}

type validateRequest struct {
	Grid [][]int `json:"grid"`
}

func validateHandler(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := boardFromGrid(req.Grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	valid, err := sudokugen.ValidateBoard(b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}

type sessionStartRequest struct {
	K          int    `json:"k"`
	Difficulty string `json:"difficulty"`
}

func sessionStartHandler(c *gin.Context) {
	var req sessionStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	diff, ok := parseDifficulty(req.Difficulty)
	if req.Difficulty != "" && !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty"})
		return
	}
	token, err := createToken(cfg.JWTSecret, newSession(req.K, diff, time.Now().UnixNano()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue session token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func sessionVerifyHandler(c *gin.Context) {
	token := c.Param("token")
	session, err := verifyToken(cfg.JWTSecret, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

func parseDifficulty(s string) (difficulty.Difficulty, bool) {
	switch s {
	case constants.DifficultyEasy:
		return difficulty.Easy, true
	case constants.DifficultyMedium:
		return difficulty.Medium, true
	case constants.DifficultyHard:
		return difficulty.Hard, true
	case constants.DifficultyExpert:
		return difficulty.Expert, true
	default:
		return difficulty.Easy, false
	}
}

func gridOf(b *board.Board) [][]int {
	n := b.N()
	grid := make([][]int, n)
	for r := 0; r < n; r++ {
		grid[r] = make([]int, n)
		for c := 0; c < n; c++ {
			grid[r][c], _ = b.Get(r, c)
		}
	}
	return grid
}

func boardFromGrid(grid [][]int) (*board.Board, error) {
	k := 0
	for candidate := board.MinK; candidate <= board.MaxK; candidate++ {
		if candidate*candidate == len(grid) {
			k = candidate
			break
		}
	}
	if k == 0 {
		return nil, errUnsupportedGridSize
	}
	b, err := board.New(k)
	if err != nil {
		return nil, err
	}
	for r, row := range grid {
		for c, v := range row {
			if err := b.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	if err := b.UpdateStats(); err != nil {
		return nil, err
	}
	return b, nil
}
