package feedback

import (
	"fmt"
	"strconv"
)

func formatAge(years int) string { return fmt.Sprintf("%d anos", years) }

func formatScale(n int) string { return fmt.Sprintf("%d/5", n) }

func formatCGPA(cgpa float64) string { return strconv.FormatFloat(cgpa, 'f', 1, 64) }

func formatHours(h int) string { return fmt.Sprintf("%dh/dia", h) }

func formatContext(f Feature, detail string) string {
	return fmt.Sprintf("%s representa %.1f%% da decisão do modelo. %s", f.Label(), f.Weight(), detail)
}
