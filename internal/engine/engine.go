package engine

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	// 根节点之后再搜几层
	DefaultDepth = 2
	// 剩余深度小于这个值时不生成打入
	dropDepth = 2
)

type Option func(e *Engine)

// WithDepth 根节点走一步之后的剩余搜索深度
func WithDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

// WithSeed 用固定种子打破同分，结果可复现
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

// Engine 可以被多个 goroutine 共用：每次搜索的计数都是局部的，随机源加锁。
type Engine struct {
	depth int
	log   zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{ // 默认值
		depth: DefaultDepth,
		log:   log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return e
}

func (e *Engine) Depth() int { return e.depth }

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}
