package console

import (
	"fmt"
	"io"
)

// Selection is a menu choice.
type Selection int

const (
	Exit Selection = iota
	AddBill
	ViewBill
	RemoveBill
	UpdateBill
)

// ParseSelection maps "1".."4" to a flow; anything else, empty included, is Exit.
func ParseSelection(s string) Selection {
	switch s {
	case "1":
		return AddBill
	case "2":
		return ViewBill
	case "3":
		return RemoveBill
	case "4":
		return UpdateBill
	default:
		return Exit
	}
}

func (s Selection) String() string {
	switch s {
	case AddBill:
		return "add_bill"
	case ViewBill:
		return "view_bill"
	case RemoveBill:
		return "remove_bill"
	case UpdateBill:
		return "update_bill"
	default:
		return "exit"
	}
}

const menuText = `
== Bill Manager ==
1. Add Bill
2. View Bills
3. Remove Bill
4. Update Bill
Enter selection:
`

// RenderMenu writes the top-level menu.
func RenderMenu(w io.Writer) {
	fmt.Fprint(w, menuText)
}
