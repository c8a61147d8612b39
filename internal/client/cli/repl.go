package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App type
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	ShowNotes(ctx context.Context) error
	AddNote(ctx context.Context) error
	DeleteNote(ctx context.Context) error
	TogglePin(ctx context.Context) error
	SearchNotes(ctx context.Context) error
	ShowTags(ctx context.Context) error
	SelectTag(ctx context.Context, tag string) error
	ShareNote(ctx context.Context) error

	ShowPayments(ctx context.Context) error
	AddPayment(ctx context.Context) error
	MarkPaid(ctx context.Context) error
	ShowUpcoming(ctx context.Context) error
	AttachReceipt(ctx context.Context) error
	SharePayment(ctx context.Context) error

	ShowChecklist(ctx context.Context) error
	AddChecklistItem(ctx context.Context) error
	ToggleChecklistItem(ctx context.Context) error

	ShowCalendar(ctx context.Context) error
	SyncCalendar(ctx context.Context) error

	ShowSettings(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
	SetPIN(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a. Errors from
// handlers are the handlers' business; they report to the user themselves.
// The loop ends on EOF or an exit command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("CapNote CLI (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("capnote %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Notes:     (n)otes, addnote, delnote, pinnote, search, tags, tag <name>, sharenote")
				printlnFn("Payments:  (p)ayments, addpayment, pay, upcoming, receipt, sharepay")
				printlnFn("Lists:     checklist, additem, toggleitem")
				printlnFn("Calendar:  calendar, synccal")
				printlnFn("Settings:  settings, theme, setpin")
				printlnFn("Other:     logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "n", "notes":
			_ = a.ShowNotes(ctx)
		case "addnote":
			_ = a.AddNote(ctx)
		case "delnote":
			_ = a.DeleteNote(ctx)
		case "pinnote":
			_ = a.TogglePin(ctx)
		case "search":
			_ = a.SearchNotes(ctx)
		case "tags":
			_ = a.ShowTags(ctx)
		case "tag":
			tag := ""
			if len(args) > 0 {
				tag = args[0]
			}
			_ = a.SelectTag(ctx, tag)
		case "sharenote":
			_ = a.ShareNote(ctx)

		case "p", "payments":
			_ = a.ShowPayments(ctx)
		case "addpayment":
			_ = a.AddPayment(ctx)
		case "pay":
			_ = a.MarkPaid(ctx)
		case "upcoming":
			_ = a.ShowUpcoming(ctx)
		case "receipt":
			_ = a.AttachReceipt(ctx)
		case "sharepay":
			_ = a.SharePayment(ctx)

		case "checklist":
			_ = a.ShowChecklist(ctx)
		case "additem":
			_ = a.AddChecklistItem(ctx)
		case "toggleitem":
			_ = a.ToggleChecklistItem(ctx)

		case "calendar":
			_ = a.ShowCalendar(ctx)
		case "synccal":
			_ = a.SyncCalendar(ctx)

		case "settings":
			_ = a.ShowSettings(ctx)
		case "theme":
			_ = a.ToggleTheme(ctx)
		case "setpin":
			_ = a.SetPIN(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
