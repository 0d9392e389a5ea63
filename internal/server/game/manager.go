package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sangoku/internal/engine"
	"sangoku/internal/shogi"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrNotYourTurn  = errors.New("not your turn")
)

type Manager struct {
	mu     sync.RWMutex
	games  map[string]*Session
	engine *engine.Engine
	log    zerolog.Logger
}

func NewManager(eng *engine.Engine) *Manager {
	if eng == nil {
		eng = engine.NewEngine()
	}
	return &Manager{
		games:  make(map[string]*Session),
		engine: eng,
		log:    log.With().Str("component", "games").Logger(),
	}
}

func (m *Manager) NewGame(cfg Config) (View, error) {
	setup, err := shogi.ParseSetup(string(cfg.Setup))
	if err != nil {
		return View{}, err
	}
	cfg.Setup = setup
	if cfg.EngineSide != shogi.First && cfg.EngineSide != shogi.Second {
		cfg.EngineSide = shogi.NoSide
	}

	var g *shogi.GameState
	if cfg.Position != "" {
		pos, err := shogi.DecodePosition(cfg.Position)
		if err != nil {
			return View{}, err
		}
		if cfg.ToMove != shogi.Second {
			cfg.ToMove = shogi.First
		}
		g = shogi.NewGameFromPosition(pos, cfg.ToMove)
	} else {
		g = shogi.NewGame(setup)
	}

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Config:    cfg,
		CreatedAt: now,
		game:      g,
		updatedAt: now,
	}

	m.mu.Lock()
	m.games[s.ID] = s
	m.mu.Unlock()

	m.log.Info().
		Str("game", s.ID).
		Str("setup", string(setup)).
		Str("engine_side", cfg.EngineSide.String()).
		Msg("new game")

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(shogi.KindNone), nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return s, nil
}

func (m *Manager) State(id string) (View, error) {
	s, err := m.Get(id)
	if err != nil {
		return View{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(shogi.KindNone), nil
}

// Targets 选中的棋子（或手里的 kind）现在能去的格子。
// kind 有效时按打入算，否则按 from 格的棋子算；都只看轮到走的一方。
func (m *Manager) Targets(id string, from shogi.Square, kind shogi.PieceKind) ([]shogi.Square, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if kind.Valid() {
		return g.LegalDrops(kind, g.SideToMove), nil
	}
	if !from.Valid() {
		return nil, nil
	}
	pc := g.Pos.At(from)
	if pc == 0 || pc.Side() != g.SideToMove {
		return nil, nil
	}
	return g.LegalMoves(from), nil
}

// Play 人走一步。引擎一方的回合不接受。
func (m *Manager) Play(id string, mv shogi.Move) (View, error) {
	s, err := m.Get(id)
	if err != nil {
		return View{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if !g.IsOver() && g.SideToMove == s.Config.EngineSide {
		return View{}, fmt.Errorf("%w: %s is played by the engine", ErrNotYourTurn, g.SideToMove)
	}
	captured, err := g.Apply(mv)
	if err != nil {
		return View{}, err
	}
	s.updatedAt = time.Now()
	m.logIfOver(s)
	return s.view(captured), nil
}

// EngineMove 让引擎替轮到走的一方走一步。
// 设了引擎方时只在引擎的回合可用；两人对下时相当于提示并直接落子。
func (m *Manager) EngineMove(id string) (View, engine.SearchResult, error) {
	s, err := m.Get(id)
	if err != nil {
		return View{}, engine.SearchResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if !g.IsOver() && s.Config.EngineSide != shogi.NoSide && g.SideToMove != s.Config.EngineSide {
		return View{}, engine.SearchResult{}, fmt.Errorf("%w: engine plays %s", ErrNotYourTurn, s.Config.EngineSide)
	}

	res, err := m.engine.Play(g)
	if err != nil {
		return View{}, res, err
	}
	s.updatedAt = time.Now()
	m.logIfOver(s)
	return s.view(res.Captured), res, nil
}

func (m *Manager) logIfOver(s *Session) {
	g := s.game
	if !g.IsOver() {
		return
	}
	winner, _ := g.Winner()
	m.log.Info().
		Str("game", s.ID).
		Str("result", g.Result().String()).
		Str("winner", winner.String()).
		Int("ply", g.Ply()).
		Msg("game over")
}

// FindMate 给轮到走的一方找连将杀，只读不落子
func (m *Manager) FindMate(id string, maxDepth int) (shogi.Side, engine.MateResult, error) {
	s, err := m.Get(id)
	if err != nil {
		return shogi.NoSide, engine.MateResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if g.IsOver() {
		winner, _ := g.Winner()
		return shogi.NoSide, engine.MateResult{}, &shogi.GameOverError{Winner: winner}
	}
	return g.SideToMove, m.engine.MateSearch(g.Pos, g.SideToMove, maxDepth), nil
}
