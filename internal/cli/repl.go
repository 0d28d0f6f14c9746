package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context) error
	Search(ctx context.Context, term string) error
	View(ctx context.Context, id string) error
	Wish(ctx context.Context, id string) error
	Unwish(ctx context.Context, id string) error
	Wishlist(ctx context.Context) error
	Showcase(ctx context.Context, rounds string) error
	Reset(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Always:
//	  - help                : show available commands
//	  - products            : list the catalog
//	  - search <term>       : list products whose title contains term
//	  - view <id>           : show product details
//	  - wish <id>           : add a product to the wishlist
//	  - unwish <id>         : remove a product from the wishlist
//	  - wishlist            : show the wishlist
//	  - showcase [n]        : rotate through n product images
//	  - reset               : wipe accounts, session and wishlist
//	  - exit | quit         : leave the program
//
//	Logged out:
//	  - register, login
//
//	Logged in:
//	  - logout
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var cmdErr error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: products, search, view, wish, unwish, wishlist, showcase, reset, logout, exit")
			} else {
				printlnFn("Available commands: products, search, view, wish, unwish, wishlist, showcase, reset, register, login, exit")
			}

		case "register", "signup":
			if a.isLoggedIn() {
				printlnFn("Already logged in")
				continue
			}
			cmdErr = a.Register(ctx)

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in")
				continue
			}
			cmdErr = a.Login(ctx)

		case "logout":
			if !a.isLoggedIn() {
				printlnFn("Not logged in")
				continue
			}
			cmdErr = a.Logout(ctx)

		case "products", "p":
			cmdErr = a.Products(ctx)

		case "search", "s":
			cmdErr = a.Search(ctx, strings.Join(args, " "))

		case "view", "wish", "unwish":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			switch cmd {
			case "view":
				cmdErr = a.View(ctx, args[0])
			case "wish":
				cmdErr = a.Wish(ctx, args[0])
			case "unwish":
				cmdErr = a.Unwish(ctx, args[0])
			}

		case "wishlist", "w":
			cmdErr = a.Wishlist(ctx)

		case "showcase":
			rounds := ""
			if len(args) > 0 {
				rounds = args[0]
			}
			cmdErr = a.Showcase(ctx, rounds)

		case "reset":
			cmdErr = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}

		if err != nil {
			return
		}
	}
}
