package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Aceita "HH:MM", "H:M" (legado, sem zero à esquerda) e "HH:MM:SS" vindo do backend
var clockText = regexp.MustCompile(`^\s*(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?\s*$`)

// TextToTime converte o texto de horário do formulário em um time.Time no dia zero (UTC).
// Os segundos, quando presentes, são descartados.
func TextToTime(text string) (time.Time, error) {
	match := clockText.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, fmt.Errorf("horário inválido: %q", text)
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds := 0
	if match[3] != "" {
		seconds, _ = strconv.Atoi(match[3])
	}
	if hours > 23 || minutes > 59 || seconds > 59 {
		return time.Time{}, fmt.Errorf("horário fora do intervalo: %q", text)
	}

	return time.Date(0, time.January, 1, hours, minutes, 0, 0, time.UTC), nil
}

// TimeToText formata o horário sempre com dois dígitos ("09:05")
func TimeToText(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// NormalizeClock reescreve um horário no formato "HH:MM". Texto vazio continua vazio.
func NormalizeClock(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	t, err := TextToTime(text)
	if err != nil {
		return "", err
	}

	return TimeToText(t), nil
}
