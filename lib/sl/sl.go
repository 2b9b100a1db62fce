package sl

import (
	"fmt"
	"log/slog"
	"time"
)

func Err(err error) slog.Attr {
	msg := "<nil>"
	if err != nil {
		msg = err.Error()
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(msg),
	}
}

// Secret returns a string with the first 5 characters of the input string
// used to hide tokens and keys in logs
func Secret(key, value string) slog.Attr {
	r := "***"
	if len(value) > 5 {
		r = fmt.Sprintf("%s***", value[0:5])
	}
	if value == "" {
		r = "?"
	}
	return slog.String(key, r)
}

func Module(mod string) slog.Attr {
	return slog.String("mod", mod)
}

// Duration reports time elapsed since start in milliseconds
func Duration(start time.Time) slog.Attr {
	return slog.String("duration", fmt.Sprintf("%.3fms", float64(time.Since(start))/float64(time.Millisecond)))
}
