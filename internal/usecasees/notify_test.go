package usecasees

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	ctrlMocks "auxite/internal/controllers/mocks"
)

func Test_Notifier(t *testing.T) {
	t.Run("delivers queued messages", func(t *testing.T) {
		tgm := &ctrlMocks.TgmCtrl{}

		var wg sync.WaitGroup
		wg.Add(1)

		tgm.On("Send", "hello").Run(func(args mock.Arguments) {
			wg.Done()
		}).Return(nil).Once()

		n := NewNotifier(tgm, logrus.New())
		n.Start()
		defer n.Stop()

		n.Enqueue("hello")

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("message was not delivered")
		}

		tgm.AssertExpectations(t)
	})

	t.Run("enqueue never blocks on a full queue", func(t *testing.T) {
		tgm := &ctrlMocks.TgmCtrl{}

		n := NewNotifier(tgm, logrus.New())

		for i := 0; i < notifyQueueSize+10; i++ {
			n.Enqueue("overflow")
		}

		assert.Len(t, n.queue, notifyQueueSize)
	})
}
