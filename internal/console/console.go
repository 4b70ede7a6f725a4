// Package console runs the interactive point-of-sale prompt used at the
// rental counter.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/logger"
	"rent-a-tool/internal/rental"
	"rent-a-tool/internal/service"
)

// ErrInputClosed is returned when input ends in the middle of a session
var ErrInputClosed = errors.New("console input closed")

const divider = "----------------------------"

type Console struct {
	svc service.CheckoutService
	in  *bufio.Scanner
	out io.Writer
}

func New(svc service.CheckoutService, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run serves clerks until they decline to process another tool. A rental
// day count or discount outside the accepted range ends the session with a
// *rental.CheckoutValidationError.
func (c *Console) Run(ctx context.Context) error {
	if err := c.printInventory(ctx); err != nil {
		return err
	}
	c.println(divider + "    Rent-A-Tool Checkout   " + divider + "\n")
	c.println("Welcome, Rent-A-Tool associate!")

	for {
		returning, err := c.askYesNo("Would you like to return a tool? (Yes/No): ")
		if err != nil {
			return err
		}
		if returning {
			if err := c.returnTool(ctx); err != nil {
				return err
			}
			continue
		}
		c.println("Okay thank you, continuing on to checkout...")
		c.println("Please provide the following information to process a tool rental")

		if err := c.checkout(ctx); err != nil {
			return err
		}

		another, err := c.askYesNo("Would you like to process another tool? (Yes/No): ")
		if err != nil {
			return err
		}
		if !another {
			break
		}
	}

	c.println("Thank you for using the Rent-A-Tool Checkout application!")
	return nil
}

func (c *Console) printInventory(ctx context.Context) error {
	tools, err := c.svc.ListTools(ctx)
	if err != nil {
		return fmt.Errorf("list tools: %w", err)
	}
	c.println(divider + "    Available Tools   " + divider + "\n")
	for _, t := range tools {
		c.println(t.String())
	}
	return nil
}

func (c *Console) returnTool(ctx context.Context) error {
	for {
		code, err := c.prompt("Tool code: ")
		if err != nil {
			return err
		}
		_, err = c.svc.ReturnTool(ctx, code)
		switch {
		case err == nil:
			c.println("Thank you. Tool has been returned!")
			return nil
		case errors.Is(err, domain.ErrUnknownCode), errors.Is(err, domain.ErrToolNotFound):
			c.println("Could not find tool associated with this code. Please try another code.")
		case errors.Is(err, domain.ErrToolNotCheckedOut):
			c.println("That tool is not currently checked out.")
			return nil
		default:
			return err
		}
	}
}

func (c *Console) checkout(ctx context.Context) error {
	code, err := c.askToolCode(ctx)
	if err != nil {
		return err
	}

	rentalDays, err := c.askInt("Rental day count: ",
		"Number of rental days needs to be a whole number. Please enter a valid number of rental days.")
	if err != nil {
		return err
	}
	if rentalDays < rental.MinRentalDays {
		msg := "Number of rental days must be greater than 0. Please restart the application and try again."
		c.println(msg + "\n")
		return &rental.CheckoutValidationError{Field: "rental days", Message: msg}
	}

	discount, err := c.askInt("Discount percent (do not include '%' symbol): ",
		"Discount percent needs to be a whole number and should not include the '%' symbol. Please enter a valid discount percent.")
	if err != nil {
		return err
	}
	if discount < rental.MinDiscountPercent || discount > rental.MaxDiscountPercent {
		msg := "Discount percent needs to be in the range 0-100. Please restart the application and try again."
		c.println(msg + "\n")
		return &rental.CheckoutValidationError{Field: "discount percent", Message: msg}
	}

	var agreement *rental.Agreement
	for {
		input, err := c.prompt("Checkout date (MM/dd/yy): ")
		if err != nil {
			return err
		}
		checkoutDate, err := rental.ParseCheckoutDate(input)
		if err != nil {
			c.println("Please provide a valid date following the format MM/dd/yy.")
			continue
		}

		agreement, err = c.svc.Checkout(ctx, service.CheckoutRequest{
			Code:            code,
			RentalDays:      rentalDays,
			DiscountPercent: discount,
			CheckoutDate:    checkoutDate,
		})
		if errors.Is(err, domain.ErrToolCheckedOut) {
			c.println("Sorry, that tool was checked out by another associate.")
			return nil
		}
		if err != nil {
			return err
		}
		break
	}

	c.println("Tool was successfully checked out! Generating the rental agreement...\n")
	if _, err := agreement.Print(c.out); err != nil {
		logger.Warn("Failed to print rental agreement", "code", code, logger.Err(err))
	}
	return nil
}

// askToolCode prompts until the clerk enters a known tool that is available
func (c *Console) askToolCode(ctx context.Context) (string, error) {
	for {
		code, err := c.prompt("Tool code: ")
		if err != nil {
			return "", err
		}
		tool, err := c.svc.GetTool(ctx, code)
		switch {
		case errors.Is(err, domain.ErrUnknownCode), errors.Is(err, domain.ErrToolNotFound):
			c.println("Could not find tool associated with this code. Please try another code.")
		case err != nil:
			return "", err
		case tool.CheckedOut:
			c.println("Sorry, that tool is currently checked out. Please try another code.")
		default:
			return tool.Code.String(), nil
		}
	}
}

func (c *Console) askInt(question, retry string) (int, error) {
	for {
		input, err := c.prompt(question)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			c.println(retry)
			continue
		}
		return n, nil
	}
}

func (c *Console) askYesNo(question string) (bool, error) {
	for {
		c.println(question)
		answer, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		c.println("Please enter either yes or no.")
	}
}

func (c *Console) prompt(question string) (string, error) {
	fmt.Fprint(c.out, question)
	return c.readLine()
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return c.in.Text(), nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
