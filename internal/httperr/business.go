package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code of a business error, or "" for other errors.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// Messages shown to users for the booking-flow business codes.
var friendly = map[string]string{
	"invalid_slot_time":   "Invalid date/time, please pick another slot",
	"slot_already_booked": "This slot has just been booked, please pick another one",
	"slot_unavailable":    "This slot is not available for booking",
	"auth_required":       "Please sign in to book a slot",
}

func FriendlyMessage(code string) string {
	if msg, ok := friendly[code]; ok {
		return msg
	}
	return code
}
