package flow

import "maxflow/pkg/apperror"

// Algorithm идентификатор алгоритма максимального потока
type Algorithm string

const (
	// AlgorithmDinic алгоритм Диница (блокирующие потоки)
	AlgorithmDinic Algorithm = "dinic"
	// AlgorithmGoldbergTarjan алгоритм проталкивания предпотока (FIFO)
	AlgorithmGoldbergTarjan Algorithm = "goldberg_tarjan"
)

// Valid проверяет, известен ли алгоритм
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmDinic, AlgorithmGoldbergTarjan:
		return true
	}
	return false
}

// ParseAlgorithm разбирает имя алгоритма
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(name)
	if !a.Valid() {
		return "", apperror.Newf(apperror.CodeInvalidAlgorithm, "unknown algorithm %q", name)
	}
	return a, nil
}

// Run запускает указанный алгоритм на сети
func (n *Network) Run(algorithm Algorithm) (int64, error) {
	switch algorithm {
	case AlgorithmDinic:
		return n.Dinic(), nil
	case AlgorithmGoldbergTarjan:
		return n.GoldbergTarjan(), nil
	default:
		return 0, apperror.Newf(apperror.CodeInvalidAlgorithm, "unknown algorithm %q", algorithm)
	}
}
