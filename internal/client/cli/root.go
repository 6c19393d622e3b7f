package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) prompt() string {
	if a.userName != "" {
		return fmt.Sprintf("songkeeper (%s)> ", a.userName)
	}
	return "songkeeper> "
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to songkeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(a.prompt())
		if !scanner.Scan() {
			break
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
				fmt.Println("Available commands: list, add, show <id>, delete <id>, status, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, list, status, exit")
			}
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "status":
			a.status(ctx)
		case "list":
			a.list(ctx)
		case "add":
			a.add(ctx)
		case "show":
			if len(args) == 0 {
				fmt.Println("Usage: show <id>")
				continue
			}
			a.show(ctx, args[0])
		case "delete":
			if len(args) == 0 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			a.delete(ctx, args[0])
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
