package session

import (
	"fmt"

	"github.com/ajmcleod/hangduel/internal/model"
)

// Encode functions are total: any in-memory state encodes. Decode functions
// are partial and return errors wrapping model.ErrMalformedState.

// malformed builds a decode error carrying model.ErrMalformedState
func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrMalformedState, fmt.Sprintf(format, args...))
}

// EncodePlayer converts a player to its snapshot form
func EncodePlayer(p model.Player) PlayerSnapshot {
	snap := PlayerSnapshot{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		Kind:        string(p.Kind),
	}
	if p.IsComputer() {
		snap.Intelligence = p.Intelligence
	}
	return snap
}

// Decode converts a player snapshot back to a model player
func (s PlayerSnapshot) Decode() (model.Player, error) {
	if s.ID == "" {
		return model.Player{}, malformed("player has empty id")
	}
	switch model.PlayerKind(s.Kind) {
	case model.KindHuman:
		return model.Player{
			ID:          model.PlayerID(s.ID),
			DisplayName: s.DisplayName,
			Kind:        model.KindHuman,
		}, nil
	case model.KindComputer:
		return model.Player{
			ID:           model.PlayerID(s.ID),
			DisplayName:  s.DisplayName,
			Kind:         model.KindComputer,
			Intelligence: model.ClampIntelligence(s.Intelligence),
		}, nil
	}
	return model.Player{}, malformed("player %q has unknown kind %q", s.ID, s.Kind)
}

// EncodeWord converts a word state to its snapshot form
func EncodeWord(w *model.WordState) WordSnapshot {
	return WordSnapshot{
		Secret:         w.Secret,
		GuessedLetters: w.GuessedLetters(),
	}
}

// Decode converts a word snapshot back to a word state
func (s WordSnapshot) Decode() (*model.WordState, error) {
	if s.Secret == "" {
		return nil, malformed("word has empty secret")
	}
	if s.Secret != model.NormalizeWord(s.Secret) {
		return nil, malformed("word secret %q is not normalized", s.Secret)
	}

	w := model.NewWordState(s.Secret)
	for _, letter := range s.GuessedLetters {
		normalized, ok := model.NormalizeLetter(letter)
		if !ok {
			return nil, malformed("word has invalid guessed letter %q", letter)
		}
		w.Guessed[normalized] = true
	}
	return w, nil
}

// EncodeSolo converts a solo game to its snapshot form
func EncodeSolo(g *model.SoloGame) *SoloSnapshot {
	return &SoloSnapshot{
		SchemaVersion: SchemaVersion,
		Player:        EncodePlayer(g.Player),
		Word:          EncodeWord(g.Word),
		MaxAttempts:   g.MaxAttempts,
		WrongGuesses:  g.WrongGuesses,
		Finished:      g.Finished,
		Won:           g.Won,
	}
}

// Decode converts a solo snapshot back to a solo game
func (s *SoloSnapshot) Decode() (*model.SoloGame, error) {
	if s.SchemaVersion != SchemaVersion {
		return nil, malformed("unsupported schema version %d", s.SchemaVersion)
	}

	player, err := s.Player.Decode()
	if err != nil {
		return nil, err
	}
	word, err := s.Word.Decode()
	if err != nil {
		return nil, err
	}
	if s.MaxAttempts <= 0 {
		return nil, malformed("solo game has non-positive max attempts %d", s.MaxAttempts)
	}
	if s.WrongGuesses < 0 || s.WrongGuesses > s.MaxAttempts {
		return nil, malformed("solo game has wrong-guess count %d outside [0, %d]", s.WrongGuesses, s.MaxAttempts)
	}

	// A solo game finishes exactly when the word is revealed or the attempt
	// budget is spent, and it is won exactly when the word is revealed.
	revealed := word.FullyRevealed()
	if s.Finished != (revealed || s.WrongGuesses >= s.MaxAttempts) {
		return nil, malformed("solo game finished flag does not match its word and guesses")
	}
	if s.Won != revealed {
		return nil, malformed("solo game won flag does not match its word")
	}

	return &model.SoloGame{
		Player:       player,
		Word:         word,
		MaxAttempts:  s.MaxAttempts,
		WrongGuesses: s.WrongGuesses,
		Finished:     s.Finished,
		Won:          s.Won,
	}, nil
}

// EncodeVersus converts a versus game to its snapshot form
func EncodeVersus(g *model.VersusGame) *VersusSnapshot {
	words := make(map[string]WordSnapshot, len(g.Words))
	for ownerID, word := range g.Words {
		words[string(ownerID)] = EncodeWord(word)
	}
	return &VersusSnapshot{
		SchemaVersion: SchemaVersion,
		Players:       []PlayerSnapshot{EncodePlayer(g.Players[0]), EncodePlayer(g.Players[1])},
		Words:         words,
		CurrentIdx:    g.CurrentIdx,
		TurnStartedAt: g.TurnStartedAt,
		Finished:      g.Finished,
		WinnerID:      string(g.WinnerID),
	}
}

// Decode converts a versus snapshot back to a versus game
func (s *VersusSnapshot) Decode() (*model.VersusGame, error) {
	if s.SchemaVersion != SchemaVersion {
		return nil, malformed("unsupported schema version %d", s.SchemaVersion)
	}
	if len(s.Players) != 2 {
		return nil, malformed("versus game has %d players, want exactly 2", len(s.Players))
	}

	var players [2]model.Player
	for i, ps := range s.Players {
		player, err := ps.Decode()
		if err != nil {
			return nil, err
		}
		players[i] = player
	}
	if players[0].ID == players[1].ID {
		return nil, malformed("versus game has duplicate player id %q", players[0].ID)
	}

	if len(s.Words) != 2 {
		return nil, malformed("versus game has %d words, want exactly 2", len(s.Words))
	}
	words := make(map[model.PlayerID]*model.WordState, 2)
	for _, p := range players {
		ws, ok := s.Words[string(p.ID)]
		if !ok {
			return nil, malformed("versus game is missing the word owned by player %q", p.ID)
		}
		word, err := ws.Decode()
		if err != nil {
			return nil, err
		}
		words[p.ID] = word
	}

	if s.CurrentIdx != 0 && s.CurrentIdx != 1 {
		return nil, malformed("versus game has current player index %d, want 0 or 1", s.CurrentIdx)
	}

	winner := model.PlayerID(s.WinnerID)
	if winner != "" {
		if winner != players[0].ID && winner != players[1].ID {
			return nil, malformed("versus game winner %q is not a player", winner)
		}
		if !s.Finished {
			return nil, malformed("versus game has a winner but is not finished")
		}
	}

	// A versus game finishes exactly when one side has fully revealed the
	// word owned by the other, and that side is the winner.
	if s.Finished {
		if winner == "" {
			return nil, malformed("versus game is finished but has no winner")
		}
		loser := players[0]
		if winner == players[0].ID {
			loser = players[1]
		}
		if !words[loser.ID].FullyRevealed() {
			return nil, malformed("versus game is finished but the word owned by %q is not fully revealed", loser.ID)
		}
	} else {
		for _, p := range players {
			if words[p.ID].FullyRevealed() {
				return nil, malformed("versus game has a fully revealed word but is not finished")
			}
		}
	}

	return &model.VersusGame{
		Players:       players,
		Words:         words,
		CurrentIdx:    s.CurrentIdx,
		TurnStartedAt: s.TurnStartedAt,
		Finished:      s.Finished,
		WinnerID:      winner,
	}, nil
}

// EncodeRoom converts a room to its snapshot form
func EncodeRoom(r *model.Room) *RoomSnapshot {
	players := make([]PlayerSnapshot, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, EncodePlayer(p))
	}
	pending := make(map[string]string, len(r.PendingWords))
	for id, word := range r.PendingWords {
		pending[string(id)] = word
	}

	snap := &RoomSnapshot{
		SchemaVersion: SchemaVersion,
		ID:            string(r.ID),
		Players:       players,
		PendingWords:  pending,
		Version:       r.Version,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.Match != nil {
		snap.Match = EncodeVersus(r.Match)
	}
	return snap
}

// Decode converts a room snapshot back to a room
func (s *RoomSnapshot) Decode() (*model.Room, error) {
	if s.SchemaVersion != SchemaVersion {
		return nil, malformed("unsupported schema version %d", s.SchemaVersion)
	}
	if s.ID == "" {
		return nil, malformed("room has empty id")
	}
	if len(s.Players) > model.MaxRoomPlayers {
		return nil, malformed("room has %d players, max is %d", len(s.Players), model.MaxRoomPlayers)
	}

	room := &model.Room{
		ID:           model.RoomID(s.ID),
		PendingWords: make(map[model.PlayerID]string, len(s.PendingWords)),
		Version:      s.Version,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}

	for _, ps := range s.Players {
		player, err := ps.Decode()
		if err != nil {
			return nil, err
		}
		if room.GetPlayer(player.ID) != nil {
			return nil, malformed("room has duplicate player id %q", player.ID)
		}
		room.Players = append(room.Players, player)
	}

	for id, word := range s.PendingWords {
		playerID := model.PlayerID(id)
		if room.GetPlayer(playerID) == nil {
			return nil, malformed("room has pending word for unknown player %q", id)
		}
		if word == "" || word != model.NormalizeWord(word) {
			return nil, malformed("room has invalid pending word for player %q", id)
		}
		room.PendingWords[playerID] = word
	}

	if s.Match != nil {
		match, err := s.Match.Decode()
		if err != nil {
			return nil, err
		}
		for _, p := range match.Players {
			if room.GetPlayer(p.ID) == nil {
				return nil, malformed("room match includes player %q who is not in the room", p.ID)
			}
		}
		room.Match = match
	}

	return room, nil
}
