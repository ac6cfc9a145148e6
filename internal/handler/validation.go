package handler

import (
	"strings"
	"sync"
	"time"

	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/localtime"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the booking form tags to gin's validator:
// ymd (2006-01-02), hhmm (15:04) and iana_tz (loadable time zone name).
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errs.New("gin validator engine is not go-playground/validator")
			return
		}
		for tag, fn := range map[string]validator.Func{
			"ymd":     layoutValidator(localtime.DateLayout),
			"hhmm":    layoutValidator(localtime.ClockLayout),
			"iana_tz": validTimeZone,
		} {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = errs.Wrap(err, "register validation "+tag)
				return
			}
		}
	})
	return registerErr
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if s == "" {
			return true
		}
		_, err := time.Parse(layout, s)
		return err == nil
	}
}

func validTimeZone(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	_, err := localtime.LoadZone(s)
	return err == nil
}
