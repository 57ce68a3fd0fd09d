package flow

import (
	"context"
	"fmt"
	"time"

	"maxflow/pkg/cache"
	"maxflow/pkg/history"
	"maxflow/pkg/logger"
	"maxflow/pkg/metrics"
	"maxflow/pkg/telemetry"
)

// SolverService оборачивает сеть операционной обвязкой: кэш результатов,
// история вычислений, метрики и трассировка. Сама сеть остаётся
// пригодной для прямого использования без сервиса
type SolverService struct {
	network *Network
	results *cache.ResultCache
	history history.Repository
	metrics *metrics.Metrics
}

// ServiceOption опция конструктора сервиса
type ServiceOption func(*SolverService)

// WithResultCache подключает кэш результатов
func WithResultCache(rc *cache.ResultCache) ServiceOption {
	return func(s *SolverService) { s.results = rc }
}

// WithHistory подключает хранилище истории вычислений
func WithHistory(repo history.Repository) ServiceOption {
	return func(s *SolverService) { s.history = repo }
}

// WithMetrics подключает метрики
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *SolverService) { s.metrics = m }
}

// NewSolverService создаёт сервис над сетью
func NewSolverService(network *Network, opts ...ServiceOption) *SolverService {
	s := &SolverService{
		network: network,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Network возвращает обслуживаемую сеть
func (s *SolverService) Network() *Network {
	return s.network
}

// Solve запускает алгоритм с кэшированием, метриками, историей и
// трассировкой. Промах кэша вычисляет поток и наполняет кэш; попадание
// восстанавливает потоки на рёбрах без пересчёта
func (s *SolverService) Solve(ctx context.Context, algorithm Algorithm) (int64, error) {
	if !algorithm.Valid() {
		if s.metrics != nil {
			s.metrics.ComputationsTotal.WithLabelValues(string(algorithm), metrics.StatusRejected).Inc()
		}
		_, err := s.network.Run(algorithm)
		return 0, err
	}

	vertices := s.network.graph.VertexCount()
	edges := s.network.graph.EdgeCount()
	log := logger.WithComputation(string(algorithm), vertices, edges)

	ctx, span := telemetry.StartComputation(ctx, string(algorithm), vertices, edges)

	networkHash := s.networkHash()

	if s.results != nil {
		cached, ok, err := s.results.Get(ctx, networkHash, string(algorithm))
		if err != nil {
			log.Warn("result cache lookup failed", "error", err)
		}
		if ok && s.network.applyCachedResult(algorithm, cached) {
			if s.metrics != nil {
				s.metrics.CacheHitsTotal.WithLabelValues("hit").Inc()
			}
			telemetry.EndComputation(span, cached.MaxFlow, nil)
			return cached.MaxFlow, nil
		}
		if s.metrics != nil {
			s.metrics.CacheHitsTotal.WithLabelValues("miss").Inc()
		}
	}

	start := time.Now()
	value, err := s.network.Run(algorithm)
	elapsed := time.Since(start)

	if err != nil {
		if s.metrics != nil {
			s.metrics.ObserveComputation(string(algorithm), metrics.StatusError, 0, elapsed)
		}
		telemetry.EndComputation(span, 0, err)
		return 0, err
	}

	if s.metrics != nil {
		s.metrics.ObserveComputation(string(algorithm), metrics.StatusOK, float64(value), elapsed)
		s.metrics.ObserveGraphSize(vertices, edges)
	}

	if s.results != nil {
		if err := s.results.Set(ctx, networkHash, s.cachedResult(algorithm, value, elapsed), 0); err != nil {
			log.Warn("result cache store failed", "error", err)
		}
	}

	if s.history != nil {
		record := &history.Record{
			Algorithm:  string(algorithm),
			MaxFlow:    value,
			Vertices:   vertices,
			Edges:      edges,
			Source:     s.network.sourceID,
			Sink:       s.network.sinkID,
			DurationMs: float64(elapsed.Microseconds()) / 1000.0,
		}
		if err := s.history.Save(ctx, record); err != nil {
			log.Warn("history save failed", "error", err)
		}
	}

	telemetry.EndComputation(span, value, nil)
	return value, nil
}

// networkHash канонический хеш текущей сети
func (s *SolverService) networkHash() string {
	data := s.network.GetGraphData()
	edges := make([]cache.EdgeData, len(data))
	for i, e := range data {
		edges[i] = cache.EdgeData{From: e.U, To: e.V, Capacity: e.Capacity}
	}
	return cache.NetworkHash(s.network.sourceID, s.network.sinkID, s.network.GetVertexIndices(), edges)
}

// cachedResult собирает кэшируемое представление решения
func (s *SolverService) cachedResult(algorithm Algorithm, value int64, elapsed time.Duration) *cache.CachedResult {
	result := &cache.CachedResult{
		MaxFlow:    value,
		Algorithm:  string(algorithm),
		DurationMs: float64(elapsed.Microseconds()) / 1000.0,
	}
	for _, e := range s.network.GetGraphData() {
		result.Flows = append(result.Flows, cache.CachedEdgeFlow{
			From:     e.U,
			To:       e.V,
			Capacity: e.Capacity,
			Flow:     e.Flow,
		})
	}
	return result
}

// applyCachedResult восстанавливает решение из кэша на рёбрах сети.
// Возвращает false, если кэш не соответствует структуре сети
func (n *Network) applyCachedResult(algorithm Algorithm, cached *cache.CachedResult) bool {
	if len(cached.Flows) != n.graph.EdgeCount() {
		return false
	}
	for _, f := range cached.Flows {
		e := n.graph.Edge(f.From, f.To)
		if e == nil || e.capacity != f.Capacity || f.Flow < 0 || f.Flow > f.Capacity {
			return false
		}
	}
	for _, f := range cached.Flows {
		n.graph.Edge(f.From, f.To).flow = f.Flow
	}
	n.maxFlow = cached.MaxFlow
	switch algorithm {
	case AlgorithmGoldbergTarjan:
		n.prompt = fmt.Sprintf("Goldberg-Tarjan: maximum flow F=%d (cached).", cached.MaxFlow)
	default:
		n.prompt = fmt.Sprintf("Dinic: maximum flow F=%d (cached).", cached.MaxFlow)
	}
	n.setFlags(true, false)
	n.emit(string(algorithm))
	return true
}
