package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avoskres/parlor/internal/models"
)

func (a *App) Search(ctx context.Context) error {
	query, err := GetSimpleText(a.reader, "Search flavors (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	season, err := GetSimpleText(a.reader, "Filter by season (All, Summer, Winter, Spring)", os.Stdout)
	if err != nil {
		return err
	}
	if season == "" {
		season = models.SeasonAll
	}

	a.session.ResetPaging()
	a.lastQuery = query
	a.lastSeason = season
	return a.showPage(ctx)
}

func (a *App) NextPage(ctx context.Context) error {
	a.session.AdvancePage(a.catalog.PageSize())
	return a.showPage(ctx)
}

func (a *App) showPage(ctx context.Context) error {
	page, err := a.catalog.Search(ctx,
		a.lastSeason, a.lastQuery, a.catalog.PageSize(), a.session.PageOffset())
	if err != nil {
		a.logger.Error(ctx, "search failed", "error", err)
		printlnFn("Store unavailable, please try again.")
		return err
	}

	a.lastResults = page
	if len(page) == 0 {
		printlnFn("No flavors on this page.")
		return nil
	}
	for i, f := range page {
		printlnFn(fmt.Sprintf("%d) %s - $%.2f", i+1, f.Name, f.Price))
	}
	return nil
}
