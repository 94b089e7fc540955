package email

// Message - одно письмо
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Provider определяет интерфейс для отправки email.
// Все отправки в workflow best-effort: ошибка провайдера логируется
// вызывающим и никогда не влияет на операцию.
type Provider interface {
	Send(msg *Message) error
}
