package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/geemus/ecto"
)

// valueMode selects which boundary representation a JSON argument
// decodes into. The engine's three conversions take values from
// different trust boundaries, and JSON alone cannot distinguish them.
type valueMode int

const (
	// modeCast decodes untrusted input for Cast: text stays text so
	// the engine's own coercion rules are the ones exercised.
	modeCast valueMode = iota

	// modeCanonical decodes canonical values for Dump and IsBlank:
	// RFC 3339 text becomes time.Time, decimal text becomes
	// *apd.Decimal, base64 becomes bytes.
	modeCanonical

	// modeNative decodes storage-native values for Load: calendar
	// values are structured tuples, everything else as canonical.
	modeNative
)

// Layouts accepted for calendar input. time.Parse tolerates
// fractional seconds in the value even when the layout omits them.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// decodeValue parses a JSON argument into the boundary representation
// for the descriptor.
func decodeValue(t ecto.Type, raw json.RawMessage, mode valueMode) (any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	switch t.Kind() {
	case ecto.KindArray:
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, fmt.Errorf("expected a JSON array: %w", err)
		}
		out := make([]any, 0, len(elems))
		for _, elem := range elems {
			v, err := decodeValue(t.Elem(), elem, mode)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case ecto.KindCustom:
		if mode == modeNative {
			return decodeValue(t.CustomImpl().Underlying(), raw, mode)
		}
		return decodeScalar(raw)

	case ecto.KindUUID:
		s, err := decodeString(raw)
		if err != nil {
			return nil, err
		}
		u, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid uuid: %w", err)
		}
		return u, nil

	case ecto.KindDecimal:
		s, err := decodeLiteral(raw)
		if err != nil {
			return nil, err
		}
		if mode == modeCast {
			return s, nil
		}
		d, _, err := apd.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid decimal: %w", err)
		}
		return d, nil

	case ecto.KindBinary:
		s, err := decodeString(raw)
		if err != nil {
			return nil, err
		}
		if mode == modeCast {
			return s, nil
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid base64: %w", err)
		}
		return b, nil

	case ecto.KindDate:
		if mode == modeNative {
			var p ecto.DateParts
			if err := strictUnmarshal(raw, &p); err != nil {
				return nil, fmt.Errorf("invalid date tuple: %w", err)
			}
			return p, nil
		}
		s, err := decodeString(raw)
		if err != nil {
			return nil, err
		}
		ts, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		return ts, nil

	case ecto.KindTime:
		if mode == modeNative {
			var p ecto.TimeParts
			if err := strictUnmarshal(raw, &p); err != nil {
				return nil, fmt.Errorf("invalid time tuple: %w", err)
			}
			return p, nil
		}
		s, err := decodeString(raw)
		if err != nil {
			return nil, err
		}
		ts, err := time.Parse(timeLayout, s)
		if err != nil {
			return nil, fmt.Errorf("invalid time: %w", err)
		}
		return ts, nil

	case ecto.KindDateTime:
		if mode == modeNative {
			var p ecto.DateTimeParts
			if err := strictUnmarshal(raw, &p); err != nil {
				return nil, fmt.Errorf("invalid datetime tuple: %w", err)
			}
			return p, nil
		}
		s, err := decodeString(raw)
		if err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("invalid datetime: %w", err)
		}
		return ts, nil

	default: // any, integer, float, boolean, string
		return decodeScalar(raw)
	}
}

// decodeScalar decodes generic JSON into engine-facing Go values:
// integral numbers become int64, other numbers float64, arrays become
// []any. Objects have no engine representation and are rejected.
func decodeScalar(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON value: %w", err)
	}
	return fromJSON(v)
}

func fromJSON(v any) (any, error) {
	switch val := v.(type) {
	case nil, bool, string:
		return val, nil
	case json.Number:
		if !strings.ContainsAny(string(val), ".eE") {
			if n, err := val.Int64(); err == nil {
				return n, nil
			}
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %s", val)
		}
		return f, nil
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			converted, err := fromJSON(elem)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value of type %T", v)
	}
}

func decodeString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("expected a JSON string: %w", err)
	}
	return s, nil
}

// decodeLiteral accepts a JSON string or number and returns its text.
func decodeLiteral(raw json.RawMessage) (string, error) {
	if len(raw) > 0 && raw[0] == '"' {
		return decodeString(raw)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("expected a JSON string or number: %w", err)
	}
	return string(n), nil
}

func strictUnmarshal(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// renderValue converts an engine value to a JSON-friendly form for
// display: calendar wrappers as RFC 3339 text, decimals as plain
// notation, UUIDs and binaries as text.
func renderValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case *apd.Decimal:
		return val.Text('f')
	case uuid.UUID:
		return val.String()
	case []byte:
		return base64.StdEncoding.EncodeToString(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = renderValue(elem)
		}
		return out
	default:
		return v
	}
}
