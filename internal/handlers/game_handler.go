package handlers

import (
	"encoding/json"
	"net/http"

	"zodis/internal/service"
)

// GameHandler serves the game session endpoints
type GameHandler struct {
	games      *service.GameService
	production bool
}

// NewGameHandler creates a new game handler. In production the create
// response never includes the target word.
func NewGameHandler(games *service.GameService, production bool) *GameHandler {
	return &GameHandler{games: games, production: production}
}

type createGameRequest struct {
	WordToGuess string `json:"word_to_guess"`
}

type createGameResponse struct {
	ID          string `json:"id"`
	WordToGuess string `json:"word_to_guess,omitempty"`
}

// Create handles POST /api/game/
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	game, err := h.games.Create(req.WordToGuess, CurrentUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := createGameResponse{ID: game.ID}
	if !h.production {
		resp.WordToGuess = game.WordToGuess
	}
	respondWithJSON(w, http.StatusOK, resp)
}

type updateGameRequest struct {
	ID         string `json:"id"`
	IsFinished bool   `json:"isfinished"`
	FinalGuess string `json:"final_guess"`
}

type updateGameResponse struct {
	ID         string `json:"id"`
	Won        bool   `json:"won"`
	GuessCount int    `json:"guess_count"`
}

// Update handles PUT /api/game/ and exists to finish a game
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ID == "" {
		respondWithError(w, http.StatusBadRequest, "id is required")
		return
	}
	if !req.IsFinished {
		respondWithError(w, http.StatusBadRequest, "isfinished must be true")
		return
	}

	result, err := h.games.Complete(req.ID, req.FinalGuess, CurrentUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, updateGameResponse{
		ID:         result.GameID,
		Won:        result.Won,
		GuessCount: result.GuessCount,
	})
}

type guessRequest struct {
	ID            string `json:"id"`
	Word          string `json:"word"`
	AttemptNumber int    `json:"attempt_number"`
}

type guessResponse struct {
	Pattern       string `json:"pattern"`
	AttemptNumber int    `json:"attempt_number"`
	Correct       bool   `json:"correct"`
}

// Guess handles POST /api/game/guess/
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ID == "" {
		respondWithError(w, http.StatusBadRequest, "id is required")
		return
	}

	guess, correct, err := h.games.SubmitGuess(req.ID, req.Word, req.AttemptNumber)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, guessResponse{
		Pattern:       guess.Pattern,
		AttemptNumber: guess.AttemptNumber,
		Correct:       correct,
	})
}

// NotFound answers every unmapped method or path under /api/ with a JSON 404
func (h *GameHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "not found")
}
