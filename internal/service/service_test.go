package service

import (
	"errors"
	"os"
	"testing"
	"time"

	"zodis/internal/database"
	"zodis/internal/repository"
	"zodis/internal/security"
	"zodis/internal/validation"
	"zodis/internal/words"
)

type testEnv struct {
	games *GameService
	stats *StatsService
	auth  *AuthService
	users *repository.UserRepository
}

func newTestEnv(t *testing.T, path string) *testEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := database.Initialize(path)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(path)
	})
	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	statsService := NewStatsService(repository.NewStatsRepository(db))
	email, err := NewEmailService("", "", "")
	if err != nil {
		t.Fatalf("NewEmailService: %v", err)
	}

	return &testEnv{
		games: NewGameService(
			repository.NewGameRepository(db),
			words.NewListSource([]string{"LABAS"}),
			statsService,
			5,
		),
		stats: statsService,
		auth: NewAuthService(
			userRepo,
			security.NewTokenManager("test-secret", time.Hour),
			email,
		),
		users: userRepo,
	}
}

func TestGameServiceCreate(t *testing.T) {
	env := newTestEnv(t, "test_game_service.db")

	// Caller-supplied word
	g, err := env.games.Create("tempo", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.WordToGuess != "TEMPO" {
		t.Errorf("word = %q, want TEMPO", g.WordToGuess)
	}

	// Source-picked word
	picked, err := env.games.Create("", nil)
	if err != nil {
		t.Fatalf("Create(picked): %v", err)
	}
	if picked.WordToGuess != "LABAS" {
		t.Errorf("picked word = %q, want LABAS", picked.WordToGuess)
	}

	// Invalid caller word
	var verr validation.ValidationError
	if _, err := env.games.Create("abc", nil); !errors.As(err, &verr) {
		t.Errorf("expected validation error for short word, got %v", err)
	}
	if _, err := env.games.Create("W0RDS", nil); !errors.As(err, &verr) {
		t.Errorf("expected validation error for bad letters, got %v", err)
	}
}

func TestGameServicePlayThrough(t *testing.T) {
	env := newTestEnv(t, "test_playthrough.db")

	g, err := env.games.Create("TEMPO", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	guess, correct, err := env.games.SubmitGuess(g.ID, "LABAS", 0)
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if correct {
		t.Error("LABAS should not solve TEMPO")
	}
	if guess.Pattern != "NNNNN" {
		t.Errorf("pattern = %q, want NNNNN", guess.Pattern)
	}
	if guess.AttemptNumber != 1 {
		t.Errorf("attempt = %d, want 1", guess.AttemptNumber)
	}

	guess, correct, err = env.games.SubmitGuess(g.ID, "tempo", 0)
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if !correct {
		t.Error("TEMPO should solve TEMPO")
	}
	if guess.Pattern != "GGGGG" {
		t.Errorf("pattern = %q, want GGGGG", guess.Pattern)
	}

	result, err := env.games.Complete(g.ID, "", nil)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !result.Won {
		t.Error("game with an all-correct guess should be won")
	}
	if result.GuessCount != 2 {
		t.Errorf("guess count = %d, want 2", result.GuessCount)
	}

	// Completed games reject further guesses and completions
	if _, _, err := env.games.SubmitGuess(g.ID, "LABAS", 0); err != ErrGameCompleted {
		t.Errorf("expected ErrGameCompleted on guess, got %v", err)
	}
	if _, err := env.games.Complete(g.ID, "", nil); err != ErrGameCompleted {
		t.Errorf("expected ErrGameCompleted on re-complete, got %v", err)
	}
}

func TestGameServiceCompleteWithFinalGuess(t *testing.T) {
	env := newTestEnv(t, "test_final_guess.db")

	g, err := env.games.Create("TEMPO", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	result, err := env.games.Complete(g.ID, "TEMPO", nil)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !result.Won || result.GuessCount != 1 {
		t.Errorf("result = %+v, want won in 1", result)
	}

	guesses, err := env.games.Guesses(g.ID)
	if err != nil {
		t.Fatalf("Guesses: %v", err)
	}
	if len(guesses) != 1 || guesses[0].Pattern != "GGGGG" {
		t.Errorf("final guess not recorded: %+v", guesses)
	}
}

func TestGameServiceUnknownGame(t *testing.T) {
	env := newTestEnv(t, "test_unknown_game.db")

	if _, _, err := env.games.SubmitGuess("no-such-id", "LABAS", 0); err != ErrGameNotFound {
		t.Errorf("expected ErrGameNotFound on guess, got %v", err)
	}
	if _, err := env.games.Complete("no-such-id", "", nil); err != ErrGameNotFound {
		t.Errorf("expected ErrGameNotFound on complete, got %v", err)
	}
	if _, err := env.games.Guesses("no-such-id"); err != ErrGameNotFound {
		t.Errorf("expected ErrGameNotFound on guesses, got %v", err)
	}
}

func TestCompletionFeedsStatistics(t *testing.T) {
	env := newTestEnv(t, "test_stats_feed.db")

	user, err := env.auth.Register("zaidejas", "", "slaptazodis1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Lost game: completed without an all-correct guess
	lost, err := env.games.Create("TEMPO", &user.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, _, err := env.games.SubmitGuess(lost.ID, "LABAS", 0); err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if _, err := env.games.Complete(lost.ID, "", nil); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	// Won game, owner bound at completion time
	won, err := env.games.Create("TEMPO", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	result, err := env.games.Complete(won.ID, "TEMPO", &user.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !result.Won {
		t.Fatal("expected won game")
	}

	stats, err := env.stats.ForUser(user.ID)
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if stats.GamesPlayed != 2 || stats.GamesWon != 1 {
		t.Errorf("played/won = %d/%d, want 2/1", stats.GamesPlayed, stats.GamesWon)
	}
	if stats.CurrentStreak != 1 || stats.MaxStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", stats.CurrentStreak, stats.MaxStreak)
	}
	if stats.AverageGuesses != 1 {
		t.Errorf("average = %f, want 1 (losses leave the mean alone)", stats.AverageGuesses)
	}
}

func TestAnonymousGameSkipsStatistics(t *testing.T) {
	env := newTestEnv(t, "test_anon_stats.db")

	g, err := env.games.Create("TEMPO", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := env.games.Complete(g.ID, "TEMPO", nil); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	// Nothing to assert against a user; reaching here without an error is
	// the contract
}

func TestStatsServiceZeroView(t *testing.T) {
	env := newTestEnv(t, "test_zero_view.db")

	user, err := env.auth.Register("naujokas", "", "slaptazodis1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	stats, err := env.stats.ForUser(user.ID)
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if stats.GamesPlayed != 0 || stats.GamesWon != 0 || stats.AverageGuesses != 0 {
		t.Errorf("expected zero-valued view, got %+v", stats)
	}
	if stats.WinPercentage() != 0 {
		t.Errorf("WinPercentage() = %f, want 0", stats.WinPercentage())
	}
}

func TestAuthRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t, "test_auth_service.db")

	user, err := env.auth.Register("zaidejas", "z@example.com", "slaptazodis1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "slaptazodis1" {
		t.Error("password stored in plaintext")
	}

	if _, err := env.auth.Register("zaidejas", "", "kitasslaptazodis"); err != repository.ErrUsernameTaken {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}

	var verr validation.ValidationError
	if _, err := env.auth.Register("ab", "", "slaptazodis1"); !errors.As(err, &verr) {
		t.Errorf("expected validation error for short username, got %v", err)
	}
	if _, err := env.auth.Register("geras_vardas", "", "trumpa"); !errors.As(err, &verr) {
		t.Errorf("expected validation error for short password, got %v", err)
	}

	token, expiresAt, err := env.auth.Login("zaidejas", "slaptazodis1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || !expiresAt.After(time.Now()) {
		t.Errorf("bad token %q or expiry %v", token, expiresAt)
	}

	claims, err := env.auth.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "zaidejas" {
		t.Errorf("claims = %+v", claims)
	}

	if _, _, err := env.auth.Login("zaidejas", "neteisingas"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := env.auth.Login("niekas", "slaptazodis1"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
