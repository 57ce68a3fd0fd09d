package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// EdgeData описание ребра для канонизации сети
type EdgeData struct {
	From     int64
	To       int64
	Capacity int64
}

// NetworkHash вычисляет хеш сети для использования как ключ кэша.
// Поток не участвует в хеше: ключ описывает задачу, а не решение.
func NetworkHash(source, sink int64, vertices []int64, edges []EdgeData) string {
	data := networkToCanonical(source, sink, vertices, edges)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}

// networkToCanonical создаёт детерминированное представление сети
func networkToCanonical(source, sink int64, vertices []int64, edges []EdgeData) []byte {
	ids := make([]int64, len(vertices))
	copy(ids, vertices)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	sorted := make([]EdgeData, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].From != sorted[j].From {
			return sorted[i].From < sorted[j].From
		}
		return sorted[i].To < sorted[j].To
	})

	var result []byte

	result = append(result, fmt.Sprintf("s:%d,t:%d;", source, sink)...)

	for _, id := range ids {
		result = append(result, fmt.Sprintf("v:%d;", id)...)
	}

	for _, e := range sorted {
		result = append(result, fmt.Sprintf("e:%d:%d:%d;", e.From, e.To, e.Capacity)...)
	}

	return result
}

// BuildSolveKey строит ключ кэша для результата вычисления
func BuildSolveKey(networkHash, algorithm string) string {
	return fmt.Sprintf("solve:%s:%s", algorithm, networkHash)
}

// QuickHash быстрый хеш для произвольных данных
func QuickHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ShortHash короткий хеш (16 символов)
func ShortHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}
