package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/avoskres/parlor/internal/models"
)

// Seed loads catalog rows entered as "name;price[;season]" lines.
// The whole batch is inserted in one transaction.
func (a *App) Seed(ctx context.Context) error {
	lines, err := GetLines(a.reader, "Enter flavors as name;price[;season]", os.Stdout)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		printlnFn("Nothing to seed.")
		return nil
	}

	items := make([]models.Flavor, 0, len(lines))
	for _, line := range lines {
		f, err := parseFlavorLine(line)
		if err != nil {
			printlnFn(fmt.Sprintf("Skipping %q: %v", line, err))
			continue
		}
		items = append(items, f)
	}
	if len(items) == 0 {
		printlnFn("Nothing to seed.")
		return nil
	}

	if err := a.catalog.Seed(ctx, items); err != nil {
		a.logger.Error(ctx, "seeding failed", "error", err)
		printlnFn("Seeding failed, please try again.")
		return err
	}

	printlnFn(fmt.Sprintf("Added %d flavors.", len(items)))
	return nil
}

func parseFlavorLine(line string) (models.Flavor, error) {
	parts := strings.Split(line, ";")
	if len(parts) < 2 || len(parts) > 3 {
		return models.Flavor{}, fmt.Errorf("want name;price[;season]")
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return models.Flavor{}, fmt.Errorf("empty name")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Flavor{}, fmt.Errorf("bad price: %w", err)
	}
	if price < 0 {
		return models.Flavor{}, fmt.Errorf("negative price")
	}

	f := models.Flavor{Name: name, Price: price}
	if len(parts) == 3 {
		f.Season = strings.TrimSpace(parts[2])
	}
	return f, nil
}
