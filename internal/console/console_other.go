//go:build !windows

package console

// Notify is a no-op outside Windows; os/signal already delivers SIGINT and SIGTERM there
func Notify(_ Handler) (stop func(), err error) {
	return func() {}, nil
}
