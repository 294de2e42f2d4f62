package main

import "strings"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return "Node"
}
