package scratch

import "strconv"

// Package-level reusable buffer (single-threaded usage).
// Initialize once with Init(capacity). Reset() every frame.
// If you ever exceed capacity, call GrowTo(...) at init/loading time (not per-frame).
var buf []byte

// Init sets up the global scratch buffer. Call once at startup.
// Example: scratch.Init(4 * 1024)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1024
	}
	buf = make([]byte, 0, capacity)
}

// Reset clears the buffer length without freeing memory.
// Call this ONCE per frame (e.g., right before drawing UI).
func Reset() { buf = buf[:0] }

// Cap returns the current capacity. Useful for tuning.
func Cap() int { return cap(buf) }

// Len returns the current length.
func Len() int { return len(buf) }

// GrowTo increases capacity (and copies current contents) if needed.
// Prefer calling this during load or on rare resize events, not every frame.
func GrowTo(minCapacity int) {
	if minCapacity <= cap(buf) {
		return
	}
	nb := make([]byte, len(buf), minCapacity)
	copy(nb, buf)
	buf = nb
}

// Ensure ensures there is room for at least n more bytes (amortized, not every call).
// This may allocate ONCE if capacity is insufficient.
func Ensure(n int) {
	if len(buf)+n > cap(buf) {
		newCap := cap(buf) * 2
		if newCap < len(buf)+n {
			newCap = len(buf) + n
		}
		GrowTo(newCap)
	}
}

// ----- Minimal % formatter (no allocations, no reflection) -----
// Supports a tiny subset: %s %d %u %f (with .prec) %%
// Format: "HP %d/%d  RTT %.2f ms"
//
// Usage:
//
//	scratch.Reset()
//	scratch.Sprintf("HP %d/%d RTT %.2f ms", hp, max, rtt)
//
// NOTE: This avoids fmt's heap use, but still boxes arguments into interfaces
// at the callsite for the variadic args slice.
func Sprintf(format string, args ...any) string {
	var ai int
	mark := len(buf)
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			buf = append(buf, ch)
			continue
		}
		// "%%" escape
		if i+1 < len(format) && format[i+1] == '%' {
			buf = append(buf, '%')
			i++
			continue
		}
		// parse verb (+ optional .precision for %f)
		i++
		prec := -1
		if i < len(format) && format[i] == '.' {
			// .<digits>
			i++
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			prec = parseUint(format[start:i])
		}
		if i >= len(format) || ai >= len(args) {
			break
		}
		switch format[i] {
		case 's':
			buf = append(buf, toString(args[ai])...)
		case 'd':
			buf = strconv.AppendInt(buf, toInt64(args[ai]), 10)
		case 'u':
			buf = strconv.AppendUint(buf, toUint64(args[ai]), 10)
		case 'f':
			p := 3
			if prec >= 0 {
				p = prec
			}
			buf = strconv.AppendFloat(buf, toFloat64(args[ai]), 'f', p, 64)
		default:
			// unknown verb, write literally
			buf = append(buf, '%', format[i])
		}
		ai++
	}
	return string(buf[mark:])
}

// ----- tiny helpers (no alloc) -----

func parseUint(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x) // allocs a string copy
	default:
		// fall back minimally
		return "<unsupported>"
	}
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	default:
		return 0
	}
}

func toUint64(v any) uint64 {
	switch x := v.(type) {
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case int:
		return uint64(x)
	case int8:
		return uint64(x)
	case int16:
		return uint64(x)
	case int32:
		return uint64(x)
	case int64:
		return uint64(x)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}
