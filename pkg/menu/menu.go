package menu

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"

	"github.com/lvim-tech/unoup/pkg/commands"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	warnColor  = color.New(color.FgYellow)
)

// Run е основният launcher loop. Връща се чак когато операторът
// избере Exit или input-ът свърши (EOF / Ctrl-D).
func Run(ctx *Context) error {
	order := ctx.Config().GetModuleOrder()
	if len(order) == 0 {
		// без конфигуриран ред - всички регистрирани команди, стабилно номерирани
		order = commands.Names()
		sort.Strings(order)
	}

	var menuCommands []commands.Command
	for _, name := range order {
		cmd := commands.Find(name)
		if cmd == nil {
			continue
		}
		menuCommands = append(menuCommands, *cmd)
	}

	if len(menuCommands) == 0 {
		return fmt.Errorf("no commands registered")
	}

	exitOption := len(menuCommands) + 1

	for {
		render(ctx, menuCommands, exitOption)

		choice, err := ctx.Ask("Select option", "")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		n, convErr := strconv.Atoi(choice)
		if convErr != nil || n < 1 || n > exitOption {
			warnColor.Fprintf(ctx.out, "Invalid option: %q\n", choice)
			continue
		}

		if n == exitOption {
			fmt.Fprintln(ctx.out, "Bye.")
			return nil
		}

		result := menuCommands[n-1].Run(ctx)
		if result.Error != nil && !errors.Is(result.Error, commands.ErrBack) {
			warnColor.Fprintf(ctx.out, "Error: %v\n", result.Error)
		}
	}
}

// render показва банера и опциите
func render(ctx *Context, menuCommands []commands.Command, exitOption int) {
	fmt.Fprintln(ctx.out)
	titleColor.Fprintln(ctx.out, ctx.Config().Menu.Title)
	fmt.Fprintf(ctx.out, "Broker coordination port: %d\n\n", ctx.Config().BrokerPort)

	for i, cmd := range menuCommands {
		fmt.Fprintf(ctx.out, "%d) %s\n", i+1, cmd.Description)
	}
	fmt.Fprintf(ctx.out, "%d) Exit\n", exitOption)
}
