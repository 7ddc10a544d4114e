package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/radityo/dayplan/internal/config"
	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/ops"
	"github.com/radityo/dayplan/internal/store"
	"github.com/radityo/dayplan/internal/suggest"
	"github.com/radityo/dayplan/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(s *store.Store, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "dayplan",
		Usage:   "Personal activity scheduler",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(s),
			editCmd(s),
			doneCmd(s),
			removeCmd(s),
			todayCmd(s),
			upcomingCmd(s, cfg),
			listCmd(s),
			statsCmd(s),
			exportCmd(s),
			suggestCmd(cfg),
			serveCmd(s, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a new activity",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Activity name"},
			&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Free-text description"},
			&cli.StringFlag{Name: "date", Required: true, Usage: "Date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "start", Required: true, Usage: "Start time (HH:MM)"},
			&cli.StringFlag{Name: "end", Required: true, Usage: "End time (HH:MM)"},
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Value: "Other", Usage: "Category: Work|Personal|Fitness|Learning|Social|Other"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Add(s, ops.AddInput{
				Name:        c.String("name"),
				Description: c.String("description"),
				Date:        c.String("date"),
				StartTime:   c.String("start"),
				EndTime:     c.String("end"),
				Category:    c.String("category"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// editCmd creates the edit command.
func editCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit an existing activity (only the given flags change)",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "New name"},
			&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "New description"},
			&cli.StringFlag{Name: "date", Usage: "New date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "start", Usage: "New start time (HH:MM)"},
			&cli.StringFlag{Name: "end", Usage: "New end time (HH:MM)"},
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "New category"},
		},
		Action: func(c *cli.Context) error {
			input := ops.UpdateInput{ID: c.Args().First()}

			if c.IsSet("name") {
				v := c.String("name")
				input.Name = &v
			}
			if c.IsSet("description") {
				v := c.String("description")
				input.Description = &v
			}
			if c.IsSet("date") {
				v := c.String("date")
				input.Date = &v
			}
			if c.IsSet("start") {
				v := c.String("start")
				input.StartTime = &v
			}
			if c.IsSet("end") {
				v := c.String("end")
				input.EndTime = &v
			}
			if c.IsSet("category") {
				v := c.String("category")
				input.Category = &v
			}

			output, err := ops.Update(s, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// doneCmd creates the done command.
func doneCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Toggle the completion state of an activity",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.Toggle(s, ops.ToggleInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// removeCmd creates the remove command.
func removeCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Delete an activity",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.Delete(s, ops.DeleteInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// todayCmd creates the today command.
func todayCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "today",
		Usage: "Show the activities scheduled for one day",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "Date (YYYY-MM-DD, defaults to today)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Today(s, ops.TodayInput{Date: c.String("date")})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// upcomingCmd creates the upcoming command.
func upcomingCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "upcoming",
		Usage: "Show the next incomplete activities",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Maximum results"},
		},
		Action: func(c *cli.Context) error {
			limit := c.Int("limit")
			if limit == 0 {
				limit = cfg.UpcomingLimit
			}

			output, err := ops.Upcoming(s, ops.UpcomingInput{Limit: limit})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all activities with optional filters",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Filter by category"},
			&cli.StringFlag{Name: "completion", Value: "all", Usage: "Filter: all|completed|incomplete"},
			&cli.StringFlag{Name: "search", Aliases: []string{"q"}, Usage: "Search name and description"},
			&cli.StringFlag{Name: "direction", Value: "desc", Usage: "Sort direction: asc|desc"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(s, ops.ListInput{
				Category:   c.String("category"),
				Completion: c.String("completion"),
				Search:     c.String("search"),
				Direction:  c.String("direction"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// statsCmd creates the stats command.
func statsCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show aggregate statistics",
		Action: func(c *cli.Context) error {
			output, err := ops.Stats(s)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export activities to an iCalendar (.ics) file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: ~/.dayplan/exports/<scope>-<timestamp>.ics)"},
			&cli.StringFlag{Name: "date", Usage: "Export only one day (YYYY-MM-DD)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(s, ops.ExportInput{
				Path: c.String("path"),
				Date: c.String("date"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// suggestCmd creates the suggest command.
func suggestCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "suggest",
		Usage:     "Suggest an activity title from a description",
		ArgsUsage: "<description>",
		Action: func(c *cli.Context) error {
			output, err := ops.Suggest(context.Background(), suggest.NewClient(cfg), ops.SuggestInput{
				Description: c.Args().First(),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the local web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Bind address (default from config)"},
			&cli.IntFlag{Name: "port", Usage: "Port (default from config)"},
		},
		Action: func(c *cli.Context) error {
			bind := cfg.WebBind
			if c.IsSet("bind") {
				bind = c.String("bind")
			}
			port := cfg.WebPort
			if c.IsSet("port") {
				port = c.Int("port")
			}

			srv := web.NewServer(s, cfg, Version, bind, port)
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if planErr, ok := err.(*errors.PlanError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", planErr.Code, planErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
