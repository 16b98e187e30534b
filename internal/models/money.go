package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cents is a money amount in integer cents. Arithmetic stays exact; only the
// JSON boundary renders it as a fixed-2-decimal string ("19.00"). The BSON
// encoding is the raw int64 so aggregation sums in the document store stay
// exact too.
type Cents int64

// CentsFromFloat converts an amount in currency units (e.g. 9.50) to cents,
// rounding half away from zero.
func CentsFromFloat(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}

// ParseCents accepts "9", "9.5" and "9.50".
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	c := Cents(w*100 + f)
	if neg {
		c = -c
	}
	return c, nil
}

func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, perr := ParseCents(s)
		if perr != nil {
			return perr
		}
		*c = parsed
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid money value %s", data)
	}
	*c = CentsFromFloat(f)
	return nil
}

// Percent renders part/whole as a fixed-2-decimal percentage string, "0.00"
// when whole is zero.
func Percent(part, whole int) string {
	if whole == 0 {
		return "0.00"
	}
	// two extra digits for rounding, all in integer space
	scaled := (int64(part)*10000 + int64(whole)/2) / int64(whole)
	return fmt.Sprintf("%d.%02d", scaled/100, scaled%100)
}
