package format

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	// TruncationLimit is the digit count above which a value is shortened
	// for display.
	TruncationLimit = 100
	// DisplayEdges is the number of leading and trailing digits kept when a
	// value is shortened.
	DisplayEdges = 25
)

// FormatValue renders v in base 10. Unless full is set, values longer than
// TruncationLimit digits are shortened to their edges plus a digit count,
// e.g. "<first 25 digits>...<last 25 digits> (2090 digits)".
func FormatValue(v *big.Int, full bool) string {
	s := v.String()
	if full || len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
}

// FormatValues renders a slice of values as "[a, b, c]".
func FormatValues(values []*big.Int, full bool) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatValue(v, full))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatBytes renders a byte count with a binary unit.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
