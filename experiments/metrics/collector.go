package metrics

import (
	"time"
)

type SearchMetric struct {
	Size            int
	DepthLimit      int
	Pruning         bool
	Duration        time.Duration
	NodesVisited    int
	NodesEvaluated  int
	MaxDepthReached int
}

type MoveMetric struct {
	Step   int
	Player int // game.Player
	Move   int
	SearchMetric
}

type GameMetric struct {
	Size           int
	StartingPlayer int
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(size, depthLimit int, pruning bool)
	Complete(visited, evaluated, maxDepth int) SearchMetric
}

type collector struct {
	size       int
	depthLimit int
	pruning    bool
	startTime  time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(size, depthLimit int, pruning bool) {
	m.startTime = time.Now()
	m.size = size
	m.depthLimit = depthLimit
	m.pruning = pruning
}

func (m *collector) Complete(visited, evaluated, maxDepth int) SearchMetric {
	return SearchMetric{
		Size:            m.size,
		DepthLimit:      m.depthLimit,
		Pruning:         m.pruning,
		Duration:        time.Since(m.startTime),
		NodesVisited:    visited,
		NodesEvaluated:  evaluated,
		MaxDepthReached: maxDepth,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(size, depthLimit int, pruning bool) {}
func (m *dummyCollector) Complete(visited, evaluated, maxDepth int) SearchMetric {
	return SearchMetric{}
}
