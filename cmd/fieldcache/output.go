package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"ads-api/application/fieldrules"
)

// writeRules หนึ่งบรรทัดต่อ key เรียงตามชื่อ
func writeRules(out io.Writer, rules map[string][]fieldrules.Constraint, labels map[string]string) {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		parts := make([]string, 0, len(rules[k]))
		for _, c := range rules[k] {
			parts = append(parts, c.String())
		}
		fmt.Fprintf(out, "%-24s %-24q %s\n", k, labels[k], strings.Join(parts, "|"))
	}
}
