package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/vidly/internal/adapter"
	"github.com/MKhiriev/vidly/models"
)

const usage = `usage: vidly-client [-a address] [-token token] [-timeout d] <command> [args]

commands:
  login <email> <password>        print a token for later -token use
  genres                          list genres
  movies                          list movies with stock
  rent <customerId> <movieId>     check a movie out
  return <customerId> <movieId>   return a movie and print the fee
  version                         print client and server versions`

var errUsage = errors.New(usage)

type cli struct {
	adapter   adapter.ServerAdapter
	out       io.Writer
	buildInfo models.AppBuildInfo
}

func newCLI(a adapter.ServerAdapter, out io.Writer, buildInfo models.AppBuildInfo) *cli {
	return &cli{adapter: a, out: out, buildInfo: buildInfo}
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	switch command {
	case "login":
		if len(args) != 2 {
			return errUsage
		}
		token, err := c.adapter.Login(ctx, models.Credentials{Email: args[0], Password: args[1]})
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		fmt.Fprintln(c.out, token)

	case "genres":
		genres, err := c.adapter.ListGenres(ctx)
		if err != nil {
			return fmt.Errorf("list genres: %w", err)
		}
		tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME")
		for _, g := range genres {
			fmt.Fprintf(tw, "%s\t%s\n", g.ID, g.Name)
		}
		return tw.Flush()

	case "movies":
		movies, err := c.adapter.ListMovies(ctx)
		if err != nil {
			return fmt.Errorf("list movies: %w", err)
		}
		tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tGENRE\tIN STOCK\tDAILY RATE")
		for _, m := range movies {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\n", m.ID, m.Title, m.Genre.Name, m.NumberInStock, m.DailyRentalRate)
		}
		return tw.Flush()

	case "rent", "return":
		if len(args) != 2 {
			return errUsage
		}
		request := models.RentalRequest{CustomerID: args[0], MovieID: args[1]}

		var rental models.Rental
		var err error
		if command == "rent" {
			rental, err = c.adapter.CreateRental(ctx, request)
		} else {
			rental, err = c.adapter.ReturnRental(ctx, request)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", command, err)
		}

		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rental)

	case "version":
		serverVersion, err := c.adapter.Version(ctx)
		if err != nil {
			return fmt.Errorf("server version: %w", err)
		}
		fmt.Fprintf(c.out, "client: %s (%s, %s)\nserver: %s\n",
			c.buildInfo.BuildVersion(), c.buildInfo.BuildDate(), c.buildInfo.BuildCommit(), serverVersion)

	default:
		return errUsage
	}

	return nil
}
