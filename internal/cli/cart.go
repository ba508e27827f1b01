package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/avoskres/parlor/internal/common"
)

func (a *App) Add(ctx context.Context) error {
	if len(a.lastResults) == 0 {
		printlnFn("Search for flavors first.")
		return nil
	}

	numStr, err := GetSimpleText(a.reader, "Flavor number to add", os.Stdout)
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(numStr)
	if err != nil || n < 1 || n > len(a.lastResults) {
		printlnFn(fmt.Sprintf("Enter a number between 1 and %d.", len(a.lastResults)))
		return nil
	}

	f := a.lastResults[n-1]
	a.session.AddToCart(f.Name, f.Price)
	printlnFn(fmt.Sprintf("%s added to cart.", f.Name))
	return nil
}

func (a *App) Cart(ctx context.Context) error {
	items := a.session.Items()
	if len(items) == 0 {
		printlnFn("Your cart is empty.")
		return nil
	}

	for _, item := range items {
		printlnFn(fmt.Sprintf("%s - $%.2f", item.FlavorName, item.Price))
	}
	printlnFn(fmt.Sprintf("Total Price: $%.2f", a.session.Total()))
	return nil
}

func (a *App) Checkout(ctx context.Context) error {
	total, err := a.session.Checkout()
	if err != nil {
		if errors.Is(err, common.ErrorEmptyCart) {
			printlnFn("Your cart is empty!")
		}
		return err
	}

	printlnFn(fmt.Sprintf("Total Amount: $%.2f", total))
	printlnFn("Thank you for your purchase!")
	return nil
}
