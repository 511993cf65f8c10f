package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Timestamp момент времени из выгрузки документной БД
// Принимает RFC3339 строку, дату YYYY-MM-DD, число миллисекунд с эпохи
// или объект {seconds, nanoseconds} (также _seconds/_nanoseconds). Всегда хранится в UTC
type Timestamp struct {
	time.Time
}

var stringLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type wireTimestamp struct {
	Seconds       *int64 `json:"seconds"`
	Nanoseconds   int64  `json:"nanoseconds"`
	LegacySeconds *int64 `json:"_seconds"`
	LegacyNanos   int64  `json:"_nanoseconds"`
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := parseTimestampString(s)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil

	case '{':
		var w wireTimestamp
		if err := json.Unmarshal(data, &w); err != nil {
			return fmt.Errorf("timestamp object: %w", err)
		}
		switch {
		case w.Seconds != nil:
			t.Time = time.Unix(*w.Seconds, w.Nanoseconds).UTC()
		case w.LegacySeconds != nil:
			t.Time = time.Unix(*w.LegacySeconds, w.LegacyNanos).UTC()
		default:
			return fmt.Errorf("timestamp object without seconds: %s", data)
		}
		return nil

	default:
		var ms json.Number
		if err := json.Unmarshal(data, &ms); err != nil {
			return fmt.Errorf("timestamp: unsupported value %s", data)
		}
		millis, err := ms.Int64()
		if err != nil {
			f, ferr := ms.Float64()
			if ferr != nil {
				return fmt.Errorf("timestamp: %w", err)
			}
			millis = int64(f)
		}
		t.Time = time.UnixMilli(millis).UTC()
		return nil
	}
}

func parseTimestampString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range stringLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp: unrecognized format %q", s)
}
