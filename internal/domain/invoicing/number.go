package invoicing

import (
	"fmt"
	"strconv"

	"github.com/facturo/backend/internal/domain/shared"
)

// NextNumber computes the next sequential invoice number for a tenant from
// the numbers already stored. Numbers are compared as integers, not
// lexicographically: "9" sorts above "10" as a string but not as a value.
// Gaps left by deletions are tolerated and freed numbers are never reused.
//
// A stored number that does not parse as an integer indicates data
// corruption and is surfaced as a fatal error; defaulting to "1" in that
// situation would risk duplicate numbering.
func NextNumber(existing []string) (string, error) {
	max := 0
	for _, n := range existing {
		v, err := strconv.Atoi(n)
		if err != nil {
			return "", shared.NewDomainError("DATA_CORRUPTION",
				fmt.Sprintf("Stored invoice number %q is not an integer", n))
		}
		if v > max {
			max = v
		}
	}
	return strconv.Itoa(max + 1), nil
}
