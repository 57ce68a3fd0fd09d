package flow

import "github.com/google/uuid"

// Event уведомление об изменении сети, рассылаемое после каждой
// мутирующей операции фасада
type Event struct {
	// ID уникальный идентификатор события
	ID string
	// Operation имя операции фасада, вызвавшей событие
	Operation string
	// Prompt статусное сообщение на момент события
	Prompt string
	// UpdateGraph снимок флага обновления текстового представления
	UpdateGraph bool
	// DrawGraph снимок флага перерисовки
	DrawGraph bool
}

// Subscribe регистрирует подписчика событий изменения.
// Подписчики вызываются синхронно, ровно один раз на мутирующую операцию
func (n *Network) Subscribe(fn func(Event)) {
	if fn == nil {
		return
	}
	n.subscribers = append(n.subscribers, fn)
}

// emit рассылает событие всем подписчикам
func (n *Network) emit(operation string) {
	if len(n.subscribers) == 0 {
		return
	}
	event := Event{
		ID:          uuid.NewString(),
		Operation:   operation,
		Prompt:      n.prompt,
		UpdateGraph: n.updateGraph,
		DrawGraph:   n.drawGraph,
	}
	for _, fn := range n.subscribers {
		fn(event)
	}
}
