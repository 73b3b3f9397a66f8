package prettyplot

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// AesMapping holds fixed values for aesthetics like "size", "shape",
// "color" and "alpha", all given as strings.
type AesMapping map[string]string

// MergeStyles merges the set values of all styles. Earlier styles take
// precedence over later ones; empty values count as unset.
func MergeStyles(styles ...AesMapping) AesMapping {
	merged := AesMapping{}
	for _, s := range styles {
		for a, v := range s {
			if v == "" {
				continue
			}
			if _, ok := merged[a]; !ok {
				merged[a] = v
			}
		}
	}
	return merged
}

type Theme struct {
	PointStyle AesMapping
}

// DefaultTheme mimics the look of a plain scatter: medium sized solid
// circles in a muted blue.
var DefaultTheme = Theme{
	PointStyle: AesMapping{
		"size":  "100",
		"shape": "solid-circle",
		"color": "#1f77b4",
		"alpha": "1",
	},
}

// WarnOutput receives warnings about dropped data and ignored styles.
var WarnOutput io.Writer = os.Stderr

func Warnf(f string, args ...interface{}) {
	if !strings.HasSuffix(f, "\n") {
		f = f + "\n"
	}
	fmt.Fprintf(WarnOutput, "Warning "+f, args...)
}
