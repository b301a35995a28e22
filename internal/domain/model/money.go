package model

import "fmt"

// FormatPrice はセント表現を "12.99" 形式の文字列にする。
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
