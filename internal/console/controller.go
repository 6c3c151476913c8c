// Package console drives the interactive bill menu over a line-oriented
// input and a text output.
package console

import (
	"context"
	"fmt"
	"io"

	"bills/internal/core"
	applog "bills/internal/log"
)

// User-facing lines.
const (
	MsgBillName     = "Bill name: "
	MsgBillAmount   = "Bill amount: "
	MsgRemovePrompt = "Enter bill name to remove"
	MsgUpdatePrompt = "Enter bill name to update"
	MsgAdded        = "Bill added"
	MsgRemoved      = "Bill removed"
	MsgUpdated      = "Bill updated"
	MsgNotFound     = "Bill not found"
	MsgNoBills      = "No bills"
	MsgRetype       = "Please type a value"
	MsgEnterNumber  = "Please enter a number"
	MsgTryAgain     = "Something went wrong, please try again"
)

// Bills is what the controller needs from the bill service.
type Bills interface {
	AddBill(ctx context.Context, b core.Bill) error
	ListBills(ctx context.Context) ([]core.Bill, error)
	RemoveBill(ctx context.Context, name string) (bool, error)
	UpdateBill(ctx context.Context, name string, amount float64) (bool, error)
}

type Controller struct {
	in     *Input
	out    io.Writer
	bills  Bills
	logger *applog.Logger
}

func NewController(r io.Reader, w io.Writer, bills Bills, logger *applog.Logger) *Controller {
	if logger == nil {
		logger = applog.Discard()
	}
	return &Controller{
		in:     NewInput(r, w),
		out:    w,
		bills:  bills,
		logger: logger.WithComponent(applog.ComponentConsole),
	}
}

// Run shows the menu and dispatches flows until the user exits. It returns
// nil on exit and an error wrapping ErrInputUnavailable when the menu prompt
// cannot be read.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		RenderMenu(c.out)
		raw, err := c.in.Selection()
		if err != nil {
			c.logger.ErrorTyped(ctx, applog.ErrorTypeInput, "Menu input unavailable", err)
			return err
		}

		sel := ParseSelection(raw)
		c.logger.DebugContext(ctx, "Menu selection", applog.FieldSelection, sel.String())

		switch sel {
		case AddBill:
			c.addBill(ctx)
		case ViewBill:
			c.viewBills(ctx)
		case RemoveBill:
			c.removeBill(ctx)
		case UpdateBill:
			c.updateBill(ctx)
		default:
			return nil
		}
	}
}

func (c *Controller) addBill(ctx context.Context) {
	c.println(MsgBillName)
	name, ok := c.in.Line()
	if !ok {
		return
	}
	c.println(MsgBillAmount)
	amount, ok := c.in.Amount()
	if !ok {
		return
	}

	if err := c.bills.AddBill(ctx, core.Bill{Name: name, Amount: amount}); err != nil {
		c.println(MsgTryAgain)
		return
	}
	c.println(MsgAdded)
}

func (c *Controller) viewBills(ctx context.Context) {
	bills, ok := c.printBills(ctx)
	if ok && len(bills) == 0 {
		c.println(MsgNoBills)
	}
}

func (c *Controller) removeBill(ctx context.Context) {
	if _, ok := c.printBills(ctx); !ok {
		return
	}
	c.println(MsgRemovePrompt)
	name, ok := c.in.Line()
	if !ok {
		return
	}

	removed, err := c.bills.RemoveBill(ctx, name)
	if err != nil {
		c.println(MsgTryAgain)
		return
	}
	if removed {
		c.println(MsgRemoved)
	} else {
		c.println(MsgNotFound)
	}
}

func (c *Controller) updateBill(ctx context.Context) {
	if _, ok := c.printBills(ctx); !ok {
		return
	}
	c.println(MsgUpdatePrompt)
	name, ok := c.in.Line()
	if !ok {
		return
	}
	c.println(MsgBillAmount)
	amount, ok := c.in.Amount()
	if !ok {
		return
	}

	updated, err := c.bills.UpdateBill(ctx, name, amount)
	if err != nil {
		c.println(MsgTryAgain)
		return
	}
	if updated {
		c.println(MsgUpdated)
	} else {
		c.println(MsgNotFound)
	}
}

// printBills writes one line per bill. It returns false if the bills could
// not be listed, after telling the user.
func (c *Controller) printBills(ctx context.Context) ([]core.Bill, bool) {
	bills, err := c.bills.ListBills(ctx)
	if err != nil {
		c.println(MsgTryAgain)
		return nil, false
	}
	for _, b := range bills {
		c.println(b.String())
	}
	return bills, true
}

func (c *Controller) println(s string) {
	fmt.Fprintln(c.out, s)
}
