package usecasees

import (
	"time"

	"github.com/sirupsen/logrus"

	"auxite/internal/controllers"
)

const (
	notifyQueueSize = 256
	notifyRetries   = 3
)

// Notifier delivers telegram messages from a bounded queue with retries,
// so lifecycle transitions never block on (or silently lose) a send.
type Notifier struct {
	tgmController controllers.TgmCtrl

	queue chan string
	done  chan struct{}

	logger *logrus.Logger
}

func NewNotifier(tgm controllers.TgmCtrl, logger *logrus.Logger) *Notifier {
	return &Notifier{
		tgmController: tgm,
		queue:         make(chan string, notifyQueueSize),
		done:          make(chan struct{}),
		logger:        logger,
	}
}

func (n *Notifier) Start() {
	go func() {
		for {
			select {
			case <-n.done:
				return
			case msg := <-n.queue:
				n.deliver(msg)
			}
		}
	}()
}

func (n *Notifier) Stop() {
	close(n.done)
}

// Enqueue never blocks; when the queue is full the message is dropped
// and counted against the log.
func (n *Notifier) Enqueue(msg string) {
	select {
	case n.queue <- msg:
	default:
		n.logger.Warn("notifier queue full, message dropped")
	}
}

func (n *Notifier) deliver(msg string) {
	for try := 0; try < notifyRetries; try++ {
		err := n.tgmController.Send(msg)
		if err == nil {
			return
		}

		n.logger.
			WithError(err).
			WithField("try", try+1).
			Error("notifier send")

		time.Sleep(time.Duration(try+1) * time.Second)
	}
}
