package httperr

import "errors"

// BusinessError is a domain outcome (lead_not_found, invalid_status) that
// handlers translate into an HTTP status; it is not an infrastructure failure.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err is a BusinessError carrying code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
