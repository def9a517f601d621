package autoit

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// Send flags
const (
	sendSpecial = 0 // keys are parsed for {KEY} and modifier syntax
	sendRaw     = 1 // keys are typed literally
)

// Keyboard sends key sequences. See the AutoIt Send documentation for syntax.
type Keyboard struct {
	backend interfaces.KeyboardBackend
	log     logger.LoggerInterface
}

// NewKeyboard creates a keyboard wrapper
func NewKeyboard(backend interfaces.KeyboardBackend, log logger.LoggerInterface) *Keyboard {
	return &Keyboard{backend: backend, log: orNoOp(log)}
}

// Send sends the string form of each arg as a key sequence, in order.
// It stops at the first failed send.
func (k *Keyboard) Send(args ...any) error {
	return k.send(sendSpecial, args)
}

// SendRaw is Send with special key syntax disabled
func (k *Keyboard) SendRaw(args ...any) error {
	return k.send(sendRaw, args)
}

func (k *Keyboard) send(flag int, args []any) error {
	for _, arg := range args {
		keys := fmt.Sprint(arg)
		k.log.Trace("Send", slog.Int("length", len(keys)), slog.Int("flag", flag))

		if err := k.backend.Send(keys, flag); err != nil {
			return transportError("Send", err)
		}
	}

	return nil
}
