package sqlite

import "strings"

func placeholder(int) string { return "?" }

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
