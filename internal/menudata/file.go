// Package menudata reads the line-oriented menu record files the catalog is
// populated from. Each record is a whitespace-separated tuple: name and
// price, with side-variant records carrying at least one trailing pizza
// name. A malformed record fails the whole load; the caller never sees a
// partially parsed component list.
package menudata

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"pizzeria/internal/models"
)

// FileSource loads ingredients, bases and side variants from three record
// files. It implements catalog.Source.
type FileSource struct {
	IngredientsPath string
	BasesPath       string
	SidesPath       string
}

// Load reads all three files. Blank lines are skipped; any malformed record
// or unreadable file aborts the load with an error naming file and line.
func (s FileSource) Load() ([]models.Ingredient, []models.Base, []models.SideVariant, error) {
	ingredients, err := readRecords(s.IngredientsPath, parseIngredient)
	if err != nil {
		return nil, nil, nil, err
	}
	bases, err := readRecords(s.BasesPath, parseBase)
	if err != nil {
		return nil, nil, nil, err
	}
	sides, err := readRecords(s.SidesPath, parseSide)
	if err != nil {
		return nil, nil, nil, err
	}
	return ingredients, bases, sides, nil
}

func readRecords[T any](path string, parse func([]string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, models.ErrCatalogLoad)
	}
	defer f.Close()

	var records []T
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		record, err := parse(fields)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v: %w", path, line, err, models.ErrCatalogLoad)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", path, err, models.ErrCatalogLoad)
	}
	return records, nil
}

func parsePriced(fields []string) (string, decimal.Decimal, error) {
	if len(fields) < 2 {
		return "", decimal.Decimal{}, errors.New("record needs a name and a price")
	}
	price, err := decimal.NewFromString(fields[1])
	if err != nil {
		return "", decimal.Decimal{}, fmt.Errorf("bad price %q", fields[1])
	}
	return fields[0], price, nil
}

func parseIngredient(fields []string) (models.Ingredient, error) {
	name, price, err := parsePriced(fields)
	if err != nil {
		return models.Ingredient{}, err
	}
	if len(fields) > 2 {
		return models.Ingredient{}, fmt.Errorf("unexpected trailing fields %v", fields[2:])
	}
	return models.NewIngredient(name, price), nil
}

func parseBase(fields []string) (models.Base, error) {
	name, price, err := parsePriced(fields)
	if err != nil {
		return models.Base{}, err
	}
	if len(fields) > 2 {
		return models.Base{}, fmt.Errorf("unexpected trailing fields %v", fields[2:])
	}
	return models.NewBase(name, price), nil
}

func parseSide(fields []string) (models.SideVariant, error) {
	name, price, err := parsePriced(fields)
	if err != nil {
		return models.SideVariant{}, err
	}
	if len(fields) < 3 {
		return models.SideVariant{}, errors.New("side record needs at least one pizza name")
	}
	return models.NewSideVariant(name, price, fields[2:]...), nil
}
