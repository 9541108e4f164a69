// Package cli holds the interactive category/brand selection used when the
// operator does not pass flags.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amonetti/nocwatch/internal/models"
)

// Prompter reads operator selections from in and writes menus to out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	log *slog.Logger
}

func NewPrompter(log *slog.Logger, in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, log: log}
}

// SelectCategory asks the operator which category to track. The second
// return value is false when the operator chose to exit (0 or EOF).
func (p *Prompter) SelectCategory() (models.Category, bool) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "Select category:")
		fmt.Fprintln(p.out, "  1. Cameras")
		fmt.Fprintln(p.out, "  2. Lenses")
		fmt.Fprint(p.out, "Enter number (exit with 0): ")

		line, ok := p.readLine()
		if !ok {
			return 0, false
		}

		switch strings.TrimSpace(line) {
		case "0":
			return 0, false
		case "1":
			return models.CategoryCamera, true
		case "2":
			return models.CategoryLens, true
		default:
			p.log.Warn("Value is not a valid choice, ignoring", "value", line)
		}
	}
}

// SelectBrands shows the numbered brand list and asks for a selection. The
// second return value is false when the operator chose to exit.
func (p *Prompter) SelectBrands(brands []string) ([]string, bool) {
	fmt.Fprintln(p.out)
	for idx, brand := range brands {
		fmt.Fprintf(p.out, "  %d. %s\n", idx+1, brand)
	}

	for {
		fmt.Fprintf(p.out, "Enter brand numbers, 1 to %d (exit with 0): ", len(brands))

		line, ok := p.readLine()
		if !ok {
			return nil, false
		}

		numbers := SanitizeBrandNumbers(p.log, splitSelection(line), len(brands))
		if len(numbers) == 0 {
			p.log.Warn("No valid brand numbers after sanitization")
			continue
		}
		if numbers[0] == 0 {
			return nil, false
		}

		return BrandNamesFromNumbers(numbers, brands), true
	}
}

func (p *Prompter) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

// splitSelection accepts both space- and comma-separated input.
func splitSelection(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}

// SanitizeBrandNumbers keeps the values that are integers in [1, total],
// dropping duplicates. The exit value 0 is honored only when it is the sole
// input; otherwise it is ignored with a warning.
func SanitizeBrandNumbers(log *slog.Logger, inputs []string, total int) []int {
	var sanitized []int
	seen := make(map[int]struct{}, len(inputs))

	for _, raw := range inputs {
		num, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn("Value is not a valid integer number, ignoring", "value", raw)
			continue
		}

		if num == 0 {
			if len(inputs) == 1 {
				return []int{0}
			}
			log.Warn("Exit value (0) is ignored if passed with other values")
			continue
		}

		if num < 1 || num > total {
			log.Warn("Value is out of range, ignoring", "value", num, "max", total)
			continue
		}

		if _, dup := seen[num]; dup {
			log.Warn("Value is a duplicate, ignoring", "value", num)
			continue
		}

		seen[num] = struct{}{}
		sanitized = append(sanitized, num)
	}

	return sanitized
}

// BrandNamesFromNumbers maps 1-based selection numbers onto brand names,
// keeping catalog order.
func BrandNamesFromNumbers(numbers []int, brands []string) []string {
	wanted := make(map[int]struct{}, len(numbers))
	for _, num := range numbers {
		wanted[num] = struct{}{}
	}

	var names []string
	for idx, brand := range brands {
		if _, ok := wanted[idx+1]; ok {
			names = append(names, brand)
		}
	}
	return names
}

// MatchBrands resolves requested brand names against the catalog list,
// case-insensitively. Unknown names are warned about and dropped; the
// result keeps the catalog's canonical spelling and the request's order.
func MatchBrands(log *slog.Logger, requested, available []string) []string {
	canonical := make(map[string]string, len(available))
	for _, brand := range available {
		canonical[strings.ToLower(brand)] = brand
	}

	var matched []string
	seen := make(map[string]struct{}, len(requested))
	for _, raw := range requested {
		key := strings.ToLower(strings.TrimSpace(raw))
		if key == "" {
			continue
		}

		name, ok := canonical[key]
		if !ok {
			log.Warn("Brand not found in available list, ignoring", "brand", raw)
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		matched = append(matched, name)
	}

	return matched
}
