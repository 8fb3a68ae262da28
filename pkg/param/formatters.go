package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Common parameter formatters and parsers. Formatters feed widget text
// marks and demo readouts; parsers accept the same shapes back.

// FrequencyFormatter formats frequency values with Hz/kHz. The unit
// switches where %.1f Hz would already print 1000.0, so values the
// octave taper lands a hair under an exact kHz still read as kHz.
func FrequencyFormatter(hz float32) string {
	if hz >= 999.95 {
		return fmt.Sprintf("%.2f kHz", hz/1000.0)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// FrequencyParser parses frequency strings
func FrequencyParser(str string) (float32, error) {
	str = strings.TrimSpace(str)

	// Handle kHz
	if strings.HasSuffix(str, "kHz") || strings.HasSuffix(str, "khz") {
		numStr := strings.TrimSuffix(strings.TrimSuffix(str, "kHz"), "khz")
		numStr = strings.TrimSpace(numStr)
		val, err := strconv.ParseFloat(numStr, 32)
		if err != nil {
			return 0, err
		}
		return float32(val) * 1000.0, nil
	}

	// Handle Hz
	str = strings.TrimSuffix(strings.TrimSuffix(str, "Hz"), "hz")
	str = strings.TrimSpace(str)
	val, err := strconv.ParseFloat(str, 32)
	return float32(val), err
}

// DecibelFormatter formats dB values
func DecibelFormatter(db float32) string {
	if db <= -60.0 {
		return "-∞ dB"
	}
	return fmt.Sprintf("%.1f dB", db)
}

// DecibelParser parses dB strings
func DecibelParser(str string) (float32, error) {
	if strings.Contains(str, "∞") || strings.Contains(str, "inf") {
		return -96.0, nil // Practical minimum
	}
	str = strings.TrimSuffix(strings.TrimSpace(str), "dB")
	str = strings.TrimSuffix(strings.TrimSpace(str), "db")
	val, err := strconv.ParseFloat(strings.TrimSpace(str), 32)
	return float32(val), err
}

// PercentFormatter formats percentage values
func PercentFormatter(value float32) string {
	return fmt.Sprintf("%.0f%%", value)
}

// PercentParser parses percentage strings
func PercentParser(str string) (float32, error) {
	str = strings.TrimSuffix(strings.TrimSpace(str), "%")
	val, err := strconv.ParseFloat(str, 32)
	return float32(val), err
}

// PanFormatter formats pan position
func PanFormatter(pan float32) string {
	if math.Abs(float64(pan)) < 0.01 {
		return "C"
	} else if pan < 0 {
		return fmt.Sprintf("%.0fL", -pan*100.0)
	}
	return fmt.Sprintf("%.0fR", pan*100.0)
}

// PanParser parses pan position strings
func PanParser(str string) (float32, error) {
	str = strings.ToUpper(strings.TrimSpace(str))

	if str == "C" || str == "CENTER" {
		return 0, nil
	}

	if strings.HasSuffix(str, "L") {
		numStr := strings.TrimSuffix(str, "L")
		val, err := strconv.ParseFloat(strings.TrimSpace(numStr), 32)
		if err != nil {
			return 0, err
		}
		return -float32(val) / 100.0, nil
	}

	if strings.HasSuffix(str, "R") {
		numStr := strings.TrimSuffix(str, "R")
		val, err := strconv.ParseFloat(strings.TrimSpace(numStr), 32)
		if err != nil {
			return 0, err
		}
		return float32(val) / 100.0, nil
	}

	// Try to parse as plain number (-1 to 1)
	val, err := strconv.ParseFloat(str, 32)
	return float32(val), err
}

// TimeFormatter formats millisecond values with appropriate units
func TimeFormatter(ms float32) string {
	if ms < 1.0 {
		return fmt.Sprintf("%.2f µs", ms*1000.0)
	} else if ms < 1000.0 {
		return fmt.Sprintf("%.1f ms", ms)
	}
	return fmt.Sprintf("%.2f s", ms/1000.0)
}

// TimeParser parses time strings into milliseconds
func TimeParser(str string) (float32, error) {
	str = strings.TrimSpace(str)

	// Handle microseconds
	if strings.HasSuffix(str, "µs") || strings.HasSuffix(str, "us") {
		numStr := strings.TrimSuffix(strings.TrimSuffix(str, "µs"), "us")
		val, err := strconv.ParseFloat(strings.TrimSpace(numStr), 32)
		if err != nil {
			return 0, err
		}
		return float32(val) / 1000.0, nil
	}

	// Handle seconds
	if strings.HasSuffix(str, "s") && !strings.HasSuffix(str, "ms") {
		numStr := strings.TrimSuffix(str, "s")
		val, err := strconv.ParseFloat(strings.TrimSpace(numStr), 32)
		if err != nil {
			return 0, err
		}
		return float32(val) * 1000.0, nil
	}

	// Handle milliseconds (default)
	str = strings.TrimSuffix(str, "ms")
	val, err := strconv.ParseFloat(strings.TrimSpace(str), 32)
	return float32(val), err
}

// OnOffFormatter formats boolean as On/Off
func OnOffFormatter(value float32) string {
	if value > 0.5 {
		return "On"
	}
	return "Off"
}

// OnOffParser parses On/Off strings
func OnOffParser(str string) (float32, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	switch str {
	case "on", "yes", "true", "1":
		return 1, nil
	case "off", "no", "false", "0":
		return 0, nil
	}
	return 0, fmt.Errorf("invalid on/off value: %s", str)
}
