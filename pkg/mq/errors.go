package mq

// TempError marks a failure as transient. Consumers requeue deliveries whose
// handler returned a TempError and drop everything else.
type TempError struct {
	Err error
}

func (e TempError) Error() string {
	if e.Err == nil {
		return "temporary error"
	}
	return e.Err.Error()
}

func (e TempError) Unwrap() error {
	return e.Err
}

func (e TempError) Temporary() bool {
	return true
}

// Temporary wraps err so that a consumer will requeue the delivery.
func Temporary(err error) error {
	return TempError{Err: err}
}
