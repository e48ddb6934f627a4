package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SumAmounts soma valores monetários arredondando o total para centavos
func SumAmounts(values ...float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return RoundWithTwoDecimalPlace(total)
}
