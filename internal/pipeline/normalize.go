package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldType selects the coercion rule applied to a raw cell.
type FieldType string

const (
	TypeInteger    FieldType = "integer"
	TypeDecimal    FieldType = "decimal"
	TypeBoolean    FieldType = "boolean"
	TypeString     FieldType = "string"
	TypeIdentifier FieldType = "identifier"
)

var (
	nonDigitPattern   = regexp.MustCompile(`[^0-9]`)
	nonDecimalPattern = regexp.MustCompile(`[^0-9.\-]`)
)

// Normalizer coerces heterogeneous cell text into canonical values. Coercion
// never fails the row: bad input yields the empty sentinel and a warning on
// the collector.
type Normalizer struct {
	diags *Collector
}

func NewNormalizer(diags *Collector) *Normalizer {
	return &Normalizer{diags: diags}
}

// Normalize applies the coercion rule for the given field type and returns
// the canonical string form.
func (n *Normalizer) Normalize(raw string, t FieldType) string {
	switch t {
	case TypeInteger:
		return n.Integer(raw)
	case TypeDecimal:
		return n.Decimal(raw)
	case TypeBoolean:
		if n.Boolean(raw) {
			return "true"
		}
		return "false"
	default:
		return n.String(raw)
	}
}

// Integer strips everything but digits and a leading minus sign, then parses.
// Missing or unparseable input yields "".
func (n *Normalizer) Integer(raw string) string {
	if isMissing(raw) {
		return ""
	}
	trimmed := strings.TrimSpace(raw)
	digits := nonDigitPattern.ReplaceAllString(trimmed, "")
	if digits == "" {
		n.diags.Warnf("could not coerce %q to an integer", trimmed)
		return ""
	}
	if strings.HasPrefix(trimmed, "-") {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		n.diags.Warnf("could not coerce %q to an integer", trimmed)
		return ""
	}
	return strconv.FormatInt(v, 10)
}

// Decimal strips everything but digits, dots and minus signs, parses the rest
// as an arbitrary-precision decimal and rounds to 5 fractional digits.
// Missing or unparseable input yields "".
func (n *Normalizer) Decimal(raw string) string {
	if isMissing(raw) {
		return ""
	}
	trimmed := strings.TrimSpace(raw)
	cleaned := nonDecimalPattern.ReplaceAllString(trimmed, "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		n.diags.Warnf("could not coerce %q to a decimal", trimmed)
		return ""
	}
	f, _ := d.Round(5).Float64()
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Boolean is true for "true", "1", "yes" (case-insensitive) and for any
// numeric text other than zero.
func (n *Normalizer) Boolean(raw string) bool {
	if isMissing(raw) {
		return false
	}
	t := strings.ToLower(strings.TrimSpace(raw))
	switch t {
	case "true", "yes":
		return true
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return f != 0
	}
	return false
}

// String trims surrounding whitespace; missing input yields "".
func (n *Normalizer) String(raw string) string {
	if isMissing(raw) {
		return ""
	}
	return strings.TrimSpace(raw)
}
