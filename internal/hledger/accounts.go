package hledger

import "strings"

// ParseAccounts parses the plain-text output of `hledger accounts`: one
// account name per line. Blank lines are dropped.
func ParseAccounts(output string) []string {
	accounts := make([]string, 0)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		accounts = append(accounts, line)
	}
	return accounts
}
