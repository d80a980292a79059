package goroutine

import (
	"runtime/debug"

	"github.com/ntereshin/eventform-gateway/internal/logger"
)

// SafeGo запускает фоновую горутину с обработкой panic. Паника в фоновой
// очистке не должна ронять весь шлюз.
func SafeGo(name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.WithComponent("goroutine").
					WithField("name", name).
					Errorf("panic в горутине: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}
