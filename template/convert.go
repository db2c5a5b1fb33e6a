package template

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// ToString is the single conversion rule used for all rendered arguments.
// fmt.Stringer and error values use their own String and Error methods, all other values
// are converted by the github.com/spf13/cast package, and whatever it can't convert falls
// back to the '%v' formatting. Nil and nil pointers convert into an empty string.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return ""
	}
	switch tp := v.(type) {
	case string:
		return tp
	case fmt.Stringer:
		return tp.String()
	case error:
		return tp.Error()
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return s
}
