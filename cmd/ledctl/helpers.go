package main

import (
	"fmt"
	"strconv"
)

func parsePercentage(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q: %w", raw, err)
	}
	return value, nil
}
