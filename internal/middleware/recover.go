package middleware

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgInternalError = "Произошла ошибка. Попробуйте позже."

// Recover creates middleware that turns handler panics into a logged error and a generic reply
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered",
						zap.Any("panic", r),
						zap.String("stack", string(debug.Stack())),
					)
					if sendErr := c.Send(msgInternalError); sendErr != nil {
						logger.Warn("Failed to notify user about panic", zap.Error(sendErr))
					}
					err = fmt.Errorf("panic: %v", r)
				}
			}()
			return next(c)
		}
	}
}
